package httpadapter_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpadapter "coinloop/internal/adapter/http"
	"coinloop/internal/core/domain"
	"coinloop/internal/core/port"
	"coinloop/internal/core/port/mocks"
)

type response struct {
	Result       json.RawMessage      `json:"result"`
	Notification *domain.Notification `json:"notification"`
	Error        string               `json:"error"`
}

const serviceToken = "platform-secret"

func serve(t *testing.T, svc port.EconomyUseCase, auth httpadapter.Authenticator, req *http.Request) (int, response) {
	t.Helper()
	h := httpadapter.NewHandler(svc, auth, slog.New(slog.DiscardHandler), httpadapter.WithServiceToken(serviceToken))
	return record(t, h, req)
}

func record(t *testing.T, h *httpadapter.Handler, req *http.Request) (int, response) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	var body response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func request(method, path, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set("X-User-ID", "u1")
	return req
}

// fromPlatform builds a request as the platform would send it, with no user.
func fromPlatform(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("X-Service-Token", serviceToken)
	return req
}

func TestCompleteTask(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	svc.EXPECT().
		CompleteTask(mock.Anything, "u1", "t1").
		Return(&port.Outcome{
			User:         &domain.User{ID: "u1", Credits: 5},
			Notification: domain.Notification{Message: "+5 Coins Earned!", Severity: domain.SeveritySuccess, DismissAfter: 3 * time.Second},
		}, nil)

	code, body := serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodPost, "/api/v1/tasks/t1/complete", ""))
	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, body.Notification)
	assert.Equal(t, "+5 Coins Earned!", body.Notification.Message)

	var out port.Outcome
	require.NoError(t, json.Unmarshal(body.Result, &out))
	assert.Equal(t, int64(5), out.User.Credits)
}

func TestErrorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrTaskNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: balance 1, need 5", domain.ErrInsufficientFunds), http.StatusPaymentRequired},
		{domain.ErrCampaignExhausted, http.StatusConflict},
		{fmt.Errorf("add task: %w: t1", domain.ErrTaskExists), http.StatusConflict},
		{domain.Invalid("task_id", "must not be empty"), http.StatusBadRequest},
		{fmt.Errorf("remove task: connection reset"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(http.StatusText(c.want), func(t *testing.T) {
			svc := mocks.NewMockEconomyUseCase(t)
			note := domain.Notification{Message: "nope", Severity: domain.SeverityError}
			svc.EXPECT().SkipTask(mock.Anything, "u1", "t1").Return(&port.Outcome{Notification: note}, c.err)

			code, body := serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodPost, "/api/v1/tasks/t1/skip", ""))
			assert.Equal(t, c.want, code)
			require.NotNil(t, body.Notification)
			assert.Equal(t, "nope", body.Notification.Message)
			if c.want == http.StatusInternalServerError {
				assert.Equal(t, "internal error", body.Error)
			} else {
				assert.Equal(t, c.err.Error(), body.Error)
			}
		})
	}
}

func TestCreateCampaignDecodesSpec(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	want := domain.CampaignSpec{
		Platform:       domain.PlatformInstagram,
		Action:         domain.ActionFollow,
		TargetURL:      "https://instagram.com/coinloop",
		TotalRequested: 50,
		CostPerAction:  3,
	}
	svc.EXPECT().CreateCampaign(mock.Anything, "u1", want).
		Return(&port.Outcome{Notification: domain.Notification{Message: "Campaign launched successfully!"}}, nil)

	body := `{"platform":"Instagram","action":"Follow","target_url":"https://instagram.com/coinloop","total_requested":50,"cost_per_action":3}`
	code, _ := serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodPost, "/api/v1/campaigns", body))
	assert.Equal(t, http.StatusOK, code)
}

func TestUnknownFieldsRejected(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	code, body := serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodPost, "/api/v1/wallet/credits", `{"amount":5,"price":1}`))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Error, "invalid body")
}

func TestRecordCompletionDefaultsToOne(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	svc.EXPECT().RecordCampaignCompletion(mock.Anything, "c1", int64(1)).
		Return(&port.Outcome{Notification: domain.Notification{Message: "Campaign progress: 13 of 50"}}, nil)
	svc.EXPECT().RecordCampaignCompletion(mock.Anything, "c1", int64(4)).
		Return(&port.Outcome{Notification: domain.Notification{Message: "Campaign progress: 17 of 50"}}, nil)

	code, _ := serve(t, svc, httpadapter.HeaderAuthenticator{}, fromPlatform(http.MethodPost, "/api/v1/campaigns/c1/completions", ""))
	assert.Equal(t, http.StatusOK, code)
	code, body := serve(t, svc, httpadapter.HeaderAuthenticator{}, fromPlatform(http.MethodPost, "/api/v1/campaigns/c1/completions", `{"count":4}`))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Campaign progress: 17 of 50", body.Notification.Message)
}

func TestListTasksFilter(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	filter := domain.TaskFilter{Platform: domain.PlatformTikTok, Country: "Brazil"}
	svc.EXPECT().ListTasks(mock.Anything, "u1", filter).
		Return([]domain.Task{{ID: "t3", Platform: domain.PlatformTikTok}}, nil)

	code, body := serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodGet, "/api/v1/tasks?platform=TikTok&country=Brazil", ""))
	assert.Equal(t, http.StatusOK, code)

	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(body.Result, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "t3", tasks[0].ID)
}

func TestWalletNotFound(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	svc.EXPECT().Wallet(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	code, body := serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodGet, "/api/v1/wallet", ""))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "user not found", body.Error)
}

func TestPackages(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	code, body := serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodGet, "/api/v1/wallet/packages", ""))
	assert.Equal(t, http.StatusOK, code)

	var pkgs []httpadapter.Package
	require.NoError(t, json.Unmarshal(body.Result, &pkgs))
	require.Len(t, pkgs, 3)
	assert.Equal(t, int64(500), pkgs[1].Credits)
	assert.True(t, pkgs[1].Popular)
}

func TestMissingIdentity(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
	code, body := serve(t, svc, httpadapter.HeaderAuthenticator{}, req)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "authentication required", body.Error)
}

func sign(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTAuthenticator(t *testing.T) {
	auth := httpadapter.NewJWTAuthenticator("s3cret", "coinloop")
	valid := jwt.RegisteredClaims{
		Subject:   "u7",
		Issuer:    "coinloop",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	cases := map[string]struct {
		header string
		want   string
	}{
		"valid":        {"Bearer " + sign(t, "s3cret", valid), "u7"},
		"wrong secret": {"Bearer " + sign(t, "other", valid), ""},
		"wrong issuer": {"Bearer " + sign(t, "s3cret", jwt.RegisteredClaims{Subject: "u7", Issuer: "else"}), ""},
		"no subject":   {"Bearer " + sign(t, "s3cret", jwt.RegisteredClaims{Issuer: "coinloop"}), ""},
		"expired": {"Bearer " + sign(t, "s3cret", jwt.RegisteredClaims{
			Subject:   "u7",
			Issuer:    "coinloop",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}), ""},
		"no header": {"", ""},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			id, err := auth.UserID(req)
			if c.want == "" {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, id)
		})
	}
}

func TestJWTRouteUsesSubject(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	svc.EXPECT().AddCredits(mock.Anything, "u7", int64(500)).
		Return(&port.Outcome{Notification: domain.Notification{Message: "+500 Coins added to wallet"}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wallet/credits", strings.NewReader(`{"amount":500}`))
	req.Header.Set("Authorization", "Bearer "+sign(t, "s3cret", jwt.RegisteredClaims{Subject: "u7"}))

	code, body := serve(t, svc, httpadapter.NewJWTAuthenticator("s3cret", ""), req)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "+500 Coins added to wallet", body.Notification.Message)
}

func TestServiceRoutesRejectUsers(t *testing.T) {
	routes := []struct {
		path, body string
	}{
		{"/api/v1/tasks", `{"platform":"TikTok","action":"View","reward":1000000}`},
		{"/api/v1/campaigns/c1/completions", `{"count":50}`},
	}
	userJWT := sign(t, "s3cret", jwt.RegisteredClaims{Subject: "mallory"})
	callers := map[string]func(*http.Request){
		"user header":  func(r *http.Request) { r.Header.Set("X-User-ID", "mallory") },
		"user jwt":     func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+userJWT) },
		"wrong token":  func(r *http.Request) { r.Header.Set("X-Service-Token", "guess") },
		"jwt as token": func(r *http.Request) { r.Header.Set("X-Service-Token", userJWT) },
	}
	auths := []httpadapter.Authenticator{httpadapter.HeaderAuthenticator{}, httpadapter.NewJWTAuthenticator("s3cret", "")}

	for _, route := range routes {
		for name, prepare := range callers {
			t.Run(route.path+"/"+name, func(t *testing.T) {
				for _, auth := range auths {
					svc := mocks.NewMockEconomyUseCase(t)
					req := httptest.NewRequest(http.MethodPost, route.path, strings.NewReader(route.body))
					prepare(req)

					code, body := serve(t, svc, auth, req)
					assert.Equal(t, http.StatusForbidden, code)
					assert.Equal(t, "service credentials required", body.Error)
				}
			})
		}
	}
}

func TestServiceRoutesClosedWithoutToken(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	h := httpadapter.NewHandler(svc, httpadapter.HeaderAuthenticator{}, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{"platform":"TikTok","action":"View","reward":1}`))
	req.Header.Set("X-User-ID", "u1")
	code, _ := record(t, h, req)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = record(t, h, fromPlatform(http.MethodPost, "/api/v1/campaigns/c1/completions", ""))
	assert.Equal(t, http.StatusForbidden, code)
}

func TestSupplyTask(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	want := domain.Task{ID: "t9", Platform: domain.PlatformTikTok, Action: domain.ActionView, Reward: 4}
	svc.EXPECT().SupplyTask(mock.Anything, want).Return(&want, nil).Once()
	svc.EXPECT().SupplyTask(mock.Anything, want).Return(nil, fmt.Errorf("add task: %w: t9", domain.ErrTaskExists)).Once()

	body := `{"id":"t9","platform":"TikTok","action":"View","reward":4}`
	code, resp := serve(t, svc, httpadapter.HeaderAuthenticator{}, fromPlatform(http.MethodPost, "/api/v1/tasks", body))
	assert.Equal(t, http.StatusOK, code)
	var added domain.Task
	require.NoError(t, json.Unmarshal(resp.Result, &added))
	assert.Equal(t, "t9", added.ID)

	code, resp = serve(t, svc, httpadapter.HeaderAuthenticator{}, fromPlatform(http.MethodPost, "/api/v1/tasks", body))
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "add task: task already exists: t9", resp.Error)
}

func TestListTasksStillOpenToUsers(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	svc.EXPECT().ListTasks(mock.Anything, "u1", domain.TaskFilter{}).Return(nil, nil)

	code, _ := serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodGet, "/api/v1/tasks", ""))
	assert.Equal(t, http.StatusOK, code)
}

func TestRegisterAcceptsOnlyProfileChoices(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	svc.EXPECT().
		RegisterUser(mock.Anything, domain.Profile{UserID: "u1", Country: "Brazil", Language: "pt"}).
		Return(&domain.User{ID: "u1", Country: "Brazil", Language: "PT"}, nil)

	code, body := serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodPost, "/api/v1/users", `{"country":"Brazil","language":"pt","reputation":100,"streak":365}`))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Error, "reputation")

	code, _ = serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodPost, "/api/v1/users", `{"country":"Brazil","language":"pt"}`))
	assert.Equal(t, http.StatusOK, code)
}

func TestListCampaignsSummary(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	svc.EXPECT().ListCampaigns(mock.Anything, "u1").Return([]domain.Campaign{
		{ID: "c2", Status: domain.CampaignPaused, CompletedCount: 30, TotalRequested: 40},
		{ID: "c1", Status: domain.CampaignActive, CompletedCount: 12, TotalRequested: 50},
	}, nil)

	code, body := serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodGet, "/api/v1/campaigns", ""))
	assert.Equal(t, http.StatusOK, code)

	var list httpadapter.CampaignList
	require.NoError(t, json.Unmarshal(body.Result, &list))
	require.Len(t, list.Campaigns, 2)
	assert.Equal(t, "c2", list.Campaigns[0].ID)
	assert.Equal(t, domain.CampaignSummary{ActiveCampaigns: 1, TotalInteractions: 42}, list.Summary)
}

func TestListCampaignsEmpty(t *testing.T) {
	svc := mocks.NewMockEconomyUseCase(t)
	svc.EXPECT().ListCampaigns(mock.Anything, "u1").Return(nil, nil)

	code, body := serve(t, svc, httpadapter.HeaderAuthenticator{}, request(http.MethodGet, "/api/v1/campaigns", ""))
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"campaigns":[],"summary":{"active_campaigns":0,"total_interactions":0}}`, string(body.Result))
}
