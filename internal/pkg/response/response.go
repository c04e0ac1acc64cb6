package response

import "github.com/gofiber/fiber/v3"

// DetailResponse is the error body shape for every failure this API
// produces: a single human-readable detail string.
type DetailResponse struct {
	Detail string `json:"detail"`
}

const (
	DetailBadRequest          = "Bad Request"
	DetailNotFound            = "Not Found"
	DetailInternalServerError = "Internal Server Error"
)

// Detail writes a JSON error body with the given status.
func Detail(c fiber.Ctx, status int, detail string) error {
	st := normalizeStatus(status)
	if detail == "" {
		detail = defaultDetailForStatus(st)
	}
	return c.Status(st).JSON(DetailResponse{Detail: detail})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultDetailForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return DetailBadRequest
	case fiber.StatusNotFound:
		return DetailNotFound
	default:
		return DetailInternalServerError
	}
}
