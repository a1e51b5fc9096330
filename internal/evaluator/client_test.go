package evaluator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qajudge/internal/conversation"
)

const fullResponse = `{
	"answer": "**Bold** answer",
	"evaluation": {
		"quality": "GOOD",
		"score": 8,
		"content_depth": 7,
		"clarity": 9,
		"actionability": 6,
		"comprehensiveness": 8,
		"reasoning": "Solid coverage.",
		"strengths": ["clear", "accurate"],
		"missing_elements": ["examples"],
		"metrics_summary": {
			"rouge1_fmeasure": 0.71,
			"rougeL_fmeasure": 0.64,
			"bleu_score": 0.33,
			"overall_similarity": 0.62,
			"interpretation": "Good match with some variations"
		}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil), &calls
}

func TestSubmit_Success(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ask", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(fullResponse))
	})

	rec, err := client.Submit(context.Background(), "  What is Go?  ")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "What is Go?", rec.Question, "question is trimmed")
	assert.Equal(t, "**Bold** answer", rec.Answer, "answer kept verbatim")
	assert.Positive(t, rec.ID)
	assert.WithinDuration(t, time.Now(), rec.CreatedAt, 5*time.Second)

	require.NotNil(t, rec.Evaluation)
	assert.Equal(t, conversation.QualityGood, rec.Evaluation.Quality)
	assert.Equal(t, 8.0, rec.Evaluation.Score)
	assert.Equal(t, []string{"clear", "accurate"}, rec.Evaluation.Strengths)
	require.NotNil(t, rec.Evaluation.MetricsSummary)
	assert.Equal(t, 0.71, rec.Evaluation.MetricsSummary.Rouge1FMeasure)
}

func TestSubmit_EmptyQuestionIsLocalNoop(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fullResponse))
	})

	rec, err := client.Submit(context.Background(), "   ")
	assert.NoError(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, int32(0), calls.Load(), "no network call for empty input")
}

func TestSubmit_MissingEvaluationIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer": "just an answer"}`))
	})

	rec, err := client.Submit(context.Background(), "q")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "just an answer", rec.Answer)
	assert.Nil(t, rec.Evaluation)
}

func TestSubmit_DegradedAnswer(t *testing.T) {
	// The backend returns 200 with an error field when answer generation
	// failed; this is the partial-evaluation case, not a transport failure.
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer": "Error getting answer: upstream busy", "error": "Answer generation failed"}`))
	})

	rec, err := client.Submit(context.Background(), "q")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Nil(t, rec.Evaluation)
}

func TestSubmit_NonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	rec, err := client.Submit(context.Background(), "q")
	assert.Nil(t, rec)
	require.Error(t, err)
	assert.Equal(t, ErrMessage, err.Error(), "user sees only the stable message")

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Contains(t, subErr.Unwrap().Error(), "500")
}

func TestSubmit_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	rec, err := client.Submit(context.Background(), "q")
	assert.Nil(t, rec)
	require.Error(t, err)
	assert.Equal(t, ErrMessage, err.Error())
}

func TestSubmit_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := New(srv.URL, time.Second, nil)
	rec, err := client.Submit(context.Background(), "q")
	assert.Nil(t, rec)
	require.Error(t, err)
	assert.Equal(t, ErrMessage, err.Error())
}

func TestSubmit_SequentialRecordsKeepOrderableIDs(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer": "a"}`))
	})

	first, err := client.Submit(context.Background(), "Q1")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := client.Submit(context.Background(), "Q2")
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestHealth(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status":"healthy","evaluator_ready":true,"environment":"development","timestamp":"2026-01-01T00:00:00Z"}`))
	})

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.True(t, status.EvaluatorReady)
}

func TestHealth_BadStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Health(context.Background())
	assert.Error(t, err)
}
