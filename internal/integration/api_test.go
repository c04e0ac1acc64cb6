package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"job-skill-api/internal/app"
	"job-skill-api/internal/config"
	"job-skill-api/internal/domain/job"
	"job-skill-api/internal/domain/skill"
	"job-skill-api/internal/hropen"
	"job-skill-api/internal/jedx"
	"job-skill-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{App: config.AppConfig{
		AppName:     "job-skill-api-test",
		Environment: "test",
		HTTPPort:    "8080",
	}}
	return app.New(cfg).Fiber
}

func doGet(t *testing.T, a *fiber.App, path string) *http.Response {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	resp, err := a.Test(req)
	if err != nil {
		t.Fatalf("request %s error: %v", path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode error: %v", err)
	}
}

func detailOf(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body struct {
		Detail string `json:"detail"`
	}
	decode(t, resp, &body)
	return body.Detail
}

func skillNames(skills []job.JobSkill) map[string]bool {
	out := make(map[string]bool, len(skills))
	for _, s := range skills {
		out[s.Name] = true
	}
	return out
}

func TestRootIndex(t *testing.T) {
	a := newTestApp(t)

	resp := doGet(t, a, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Message   string            `json:"message"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	decode(t, resp, &body)

	if body.Message != "Job Skill Architecture API" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.Endpoints["jobs"] != "/api/jobs" {
		t.Fatalf("unexpected endpoints map: %v", body.Endpoints)
	}
}

func TestListJobs(t *testing.T) {
	a := newTestApp(t)

	resp := doGet(t, a, "/api/jobs")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var jobs []job.Job
	decode(t, resp, &jobs)

	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	if jobs[0].PositionID != "JDX-001" {
		t.Fatalf("expected JDX-001 first, got %s", jobs[0].PositionID)
	}
}

func TestGetJobPosting(t *testing.T) {
	a := newTestApp(t)

	for _, id := range []string{"JDX-001", "JDX-002", "JDX-003"} {
		resp := doGet(t, a, "/api/jobs/"+id)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", id, resp.StatusCode)
		}

		var posting jedx.JobPosting
		decode(t, resp, &posting)

		if posting.PositionID != id || posting.PostingID != id {
			t.Fatalf("%s: expected positionID and postingID both set, got %q / %q", id, posting.PositionID, posting.PostingID)
		}
		if posting.Name != posting.Title {
			t.Fatalf("%s: expected name == title", id)
		}
		if len(posting.Responsibilities) != 3 {
			t.Fatalf("%s: expected 3 responsibilities, got %d", id, len(posting.Responsibilities))
		}
	}
}

func TestGetJobPosting_NotFound(t *testing.T) {
	a := newTestApp(t)

	paths := []string{
		"/api/jobs/JDX-404",
		"/api/jobs/JDX-404/skills",
		"/api/jobs/JDX-404/skills/required",
		"/api/jobs/JDX-404/skills/recommended",
	}
	for _, p := range paths {
		resp := doGet(t, a, p)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", p, resp.StatusCode)
		}
		if detail := detailOf(t, resp); detail != "Job with ID JDX-404 not found" {
			t.Fatalf("%s: unexpected detail %q", p, detail)
		}
	}
}

func TestJobSkillBreakdown(t *testing.T) {
	a := newTestApp(t)

	resp := doGet(t, a, "/api/jobs/JDX-001/skills")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var breakdown usecase.SkillBreakdown
	decode(t, resp, &breakdown)

	if breakdown.Job.PositionID != "JDX-001" {
		t.Fatalf("unexpected job %s", breakdown.Job.PositionID)
	}

	required := skillNames(breakdown.Required)
	for _, want := range []string{"Python Programming", "FastAPI Development", "SQL Database Design"} {
		if !required[want] {
			t.Fatalf("expected %q in required_skills, got %v", want, required)
		}
	}
	if len(required) != 3 {
		t.Fatalf("expected exactly 3 required skills, got %d", len(required))
	}

	recommended := skillNames(breakdown.Recommended)
	for _, want := range []string{"Docker Containerization", "AWS Cloud Services"} {
		if !recommended[want] {
			t.Fatalf("expected %q in recommended_skills, got %v", want, recommended)
		}
	}
	if len(recommended) != 2 {
		t.Fatalf("expected exactly 2 recommended skills, got %d", len(recommended))
	}

	for name := range required {
		if recommended[name] {
			t.Fatalf("skill %q appears in both partitions", name)
		}
	}
}

func TestRequiredAndRecommendedEndpoints(t *testing.T) {
	a := newTestApp(t)

	resp := doGet(t, a, "/api/jobs/JDX-003/skills/required")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var required []job.JobSkill
	decode(t, resp, &required)
	if len(required) != 3 {
		t.Fatalf("expected 3 required skills, got %d", len(required))
	}

	resp = doGet(t, a, "/api/jobs/JDX-003/skills/recommended")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var recommended []job.JobSkill
	decode(t, resp, &recommended)
	if len(recommended) != 2 {
		t.Fatalf("expected 2 recommended skills, got %d", len(recommended))
	}
}

func TestListSkills(t *testing.T) {
	a := newTestApp(t)

	resp := doGet(t, a, "/api/skills")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var skills []skill.Skill
	decode(t, resp, &skills)
	if len(skills) != 8 {
		t.Fatalf("expected 8 skills, got %d", len(skills))
	}
}

func TestGetSkillByName_CaseInsensitive(t *testing.T) {
	a := newTestApp(t)

	var encoded skill.Skill
	resp := doGet(t, a, "/api/skills/PYTHON%20PROGRAMMING")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("encoded upper-case: expected 200, got %d", resp.StatusCode)
	}
	decode(t, resp, &encoded)

	var lower skill.Skill
	resp = doGet(t, a, "/api/skills/python%20programming")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("lower-case: expected 200, got %d", resp.StatusCode)
	}
	decode(t, resp, &lower)

	if encoded != lower {
		t.Fatalf("expected both lookups to return the same skill: %+v vs %+v", encoded, lower)
	}
	if encoded.Name != "Python Programming" {
		t.Fatalf("unexpected skill name %q", encoded.Name)
	}
}

func TestGetSkillByName_NotFound(t *testing.T) {
	a := newTestApp(t)

	resp := doGet(t, a, "/api/skills/Underwater%20Basketweaving")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if detail := detailOf(t, resp); detail != "Skill 'Underwater Basketweaving' not found" {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestSkillsAPI_Assertions(t *testing.T) {
	a := newTestApp(t)

	resp := doGet(t, a, "/skills?identifier=JDX-003")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res hropen.SkillsResponse
	decode(t, resp, &res)

	if res.Context != hropen.ContextURI {
		t.Fatalf("unexpected @context %q", res.Context)
	}
	if res.Object == nil || res.Object.ID != "https://api.example.com/jedx/jobs/JDX-003" {
		t.Fatalf("unexpected referenced object %+v", res.Object)
	}

	byName := make(map[string]hropen.SkillAssertion)
	for _, s := range res.Skills {
		byName[s.Skill.Name] = s
	}

	docker := byName["Docker Containerization"]
	if docker.ValidationStatus != hropen.StatusValidated || docker.ProficiencyLevel.Name != hropen.LevelAdvanced {
		t.Fatalf("docker: expected Validated/Advanced, got %s/%s", docker.ValidationStatus, docker.ProficiencyLevel.Name)
	}

	python := byName["Python Programming"]
	if python.ValidationStatus != hropen.StatusProvisional || python.ProficiencyLevel.Name != hropen.LevelDeveloping {
		t.Fatalf("python: expected Provisional/Developing, got %s/%s", python.ValidationStatus, python.ProficiencyLevel.Name)
	}
}

func TestSkillsAPI_IdentifierForms(t *testing.T) {
	a := newTestApp(t)

	resp := doGet(t, a, "/skills?identifier=JDX-002")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("bare ID: expected 200, got %d", resp.StatusCode)
	}
	var bare hropen.SkillsResponse
	decode(t, resp, &bare)

	resp = doGet(t, a, "/skills?identifier=https%3A%2F%2Fx.example%2Fjedx%2Fjobs%2FJDX-002")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("URI: expected 200, got %d", resp.StatusCode)
	}
	var uri hropen.SkillsResponse
	decode(t, resp, &uri)

	if bare.Object.ID != uri.Object.ID {
		t.Fatalf("bare ID and URI identifiers should resolve to the same job")
	}
	if len(bare.Skills) != len(uri.Skills) {
		t.Fatalf("assertion counts differ: %d vs %d", len(bare.Skills), len(uri.Skills))
	}
}

func TestSkillsAPI_NotFound(t *testing.T) {
	a := newTestApp(t)

	resp := doGet(t, a, "/skills?identifier=JDX-404")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if detail := detailOf(t, resp); detail != "Job with identifier JDX-404 not found" {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestSkillsAPI_MissingIdentifier(t *testing.T) {
	a := newTestApp(t)

	resp := doGet(t, a, "/skills")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(body) == 0 {
		t.Fatalf("expected a detail body")
	}
}
