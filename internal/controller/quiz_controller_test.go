package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kvnhng/quizmint/internal/dto"
	"github.com/kvnhng/quizmint/internal/util"
)

type stubQuizService struct {
	generateResp *dto.QuizResponse
	generateErr  error
	submitResp   *dto.SubmitQuizResponse
	submitErr    error
	historyResp  []dto.QuizSessionDTO
	historyErr   error
	lastUserID   uint
}

func (s *stubQuizService) Generate(_ context.Context, userID uint, req dto.GenerateQuizRequest) (*dto.QuizResponse, error) {
	s.lastUserID = userID
	return s.generateResp, s.generateErr
}

func (s *stubQuizService) Submit(_ context.Context, userID uint, req dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	s.lastUserID = userID
	return s.submitResp, s.submitErr
}

func (s *stubQuizService) History(_ context.Context, userID uint) ([]dto.QuizSessionDTO, error) {
	s.lastUserID = userID
	return s.historyResp, s.historyErr
}

func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("claims", &util.Claims{UserID: userID, RegisteredClaims: jwt.RegisteredClaims{}})
	}
}

func newQuizRouter(svc *stubQuizService, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewQuizController(svc)

	r := gin.New()
	quiz := r.Group("/api/quiz", asUser(userID))
	quiz.POST("/generate", ctrl.GenerateQuiz)
	quiz.POST("/submit", ctrl.SubmitQuiz)
	quiz.GET("/history", ctrl.History)
	return r
}

func TestGenerateQuiz_MissingTopic(t *testing.T) {
	r := newQuizRouter(&stubQuizService{}, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/generate", strings.NewReader(`{"count":5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGenerateQuiz_ReturnsQuestions(t *testing.T) {
	svc := &stubQuizService{generateResp: &dto.QuizResponse{Questions: []dto.QuestionDTO{
		{ID: "q1", Question: "?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
	}}}
	r := newQuizRouter(svc, 9)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/generate", strings.NewReader(`{"topic":"Wellness"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.lastUserID != 9 {
		t.Fatalf("expected user 9, got %d", svc.lastUserID)
	}

	var resp dto.QuizResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Questions) != 1 || resp.Questions[0].ID != "q1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSubmitQuiz_AnswerMismatchIs400(t *testing.T) {
	svc := &stubQuizService{submitErr: util.ErrAnswersMismatch}
	r := newQuizRouter(svc, 1)

	body := `{"topic":"t","questions":[{"question":"?","options":["a","b","c","d"],"correctIndex":0}],"answers":[0,1]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitQuiz_MissingFields(t *testing.T) {
	r := newQuizRouter(&stubQuizService{}, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", strings.NewReader(`{"topic":"t"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitQuiz_Success(t *testing.T) {
	svc := &stubQuizService{submitResp: &dto.SubmitQuizResponse{
		Score: 5, Total: 5, Feedback: "Great run!", SessionID: 12,
	}}
	r := newQuizRouter(svc, 1)

	body := `{"topic":"Tech Trends","questions":[{"question":"?","options":["a","b","c","d"],"correctIndex":0}],"answers":[0]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.SubmitQuizResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Score != 5 || resp.Feedback == "" || resp.SessionID != 12 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHistory_ReturnsEntries(t *testing.T) {
	svc := &stubQuizService{historyResp: []dto.QuizSessionDTO{{ID: 1, Topic: "Space", Score: 3}}}
	r := newQuizRouter(svc, 4)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quiz/history", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.lastUserID != 4 {
		t.Fatalf("expected history lookup for user 4, got %d", svc.lastUserID)
	}

	var entries []dto.QuizSessionDTO
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(entries) != 1 || entries[0].Topic != "Space" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestQuizEndpoints_RequireClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewQuizController(&stubQuizService{})

	r := gin.New()
	r.POST("/api/quiz/generate", ctrl.GenerateQuiz) // no claims injected

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/generate", strings.NewReader(`{"topic":"t"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
