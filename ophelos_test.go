package ophelos

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/ophelos/ophelos-go/auth"
	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/internal/testutil"
	"github.com/ophelos/ophelos-go/models"
)

func testClient(t *testing.T, routes map[string]http.HandlerFunc) *Client {
	t.Helper()
	server := testutil.NewAPIServer(t, routes)
	return NewClientWithToken("test-token", auth.EnvironmentStaging, WithBaseURL(server.URL))
}

func TestDebtsGet(t *testing.T) {
	var rawQuery string
	c := testClient(t, map[string]http.HandlerFunc{
		"GET /debts/deb_123": func(w http.ResponseWriter, r *http.Request) {
			rawQuery = r.URL.RawQuery
			testutil.JSONResponse(http.StatusOK,
				`{"id":"deb_123","object":"debt","currency":"GBP","summary":{"amount_remaining":7500}}`)(w, r)
		},
	})

	debt, err := c.Debts.Get(context.Background(), "deb_123", "customer", "organisation")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if debt.ID != "deb_123" {
		t.Errorf("ID = %q, want deb_123", debt.ID)
	}
	if got := debt.BalanceAmount(); got != 7500 {
		t.Errorf("BalanceAmount() = %d, want 7500", got)
	}
	if rawQuery != "expand%5B%5D=customer&expand%5B%5D=organisation" {
		t.Errorf("query = %q, want both expand[] params", rawQuery)
	}
}

func TestDebtsGetNotFound(t *testing.T) {
	c := testClient(t, nil)

	_, err := c.Debts.Get(context.Background(), "deb_missing")
	if !httpclient.IsNotFound(err) {
		t.Errorf("err = %v, want 404 APIError", err)
	}
}

func TestDebtsListPagination(t *testing.T) {
	c := testClient(t, map[string]http.HandlerFunc{
		"GET /debts": testutil.ListResponse(
			`{"object":"list","data":[{"id":"deb_1","object":"debt"},{"id":"deb_2","object":"debt"}],"has_more":true}`,
			9,
			map[string]string{"next": "https://api.ophelos.dev/debts?after=deb_2&limit=2"},
		),
	})

	list, err := c.Debts.List(context.Background(), &ListOptions{Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(list.Data))
	}
	if !list.HasMore {
		t.Error("HasMore = false, want true from headers")
	}
	if list.TotalCount == nil || *list.TotalCount != 9 {
		t.Errorf("TotalCount = %v, want 9", list.TotalCount)
	}
	if list.Pagination == nil || list.Pagination.Next == nil || list.Pagination.Next.After != "deb_2" {
		t.Errorf("Pagination = %+v, want next cursor after deb_2", list.Pagination)
	}
}

func TestDebtsSearchSendsQuery(t *testing.T) {
	var query string
	c := testClient(t, map[string]http.HandlerFunc{
		"GET /debts/search": func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query().Get("query")
			testutil.JSONResponse(http.StatusOK, `{"object":"list","data":[]}`)(w, r)
		},
	})

	if _, err := c.Debts.Search(context.Background(), "status:paying", nil); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if query != "status:paying" {
		t.Errorf("query param = %q, want status:paying", query)
	}
}

func TestDebtsIterate(t *testing.T) {
	c := testClient(t, map[string]http.HandlerFunc{
		"GET /debts": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Query().Get("after") == "" {
				w.Header().Set("Link", `<https://api.ophelos.dev/debts?after=deb_2&limit=2>; rel="next"`)
				io.WriteString(w, `{"object":"list","data":[{"id":"deb_1"},{"id":"deb_2"}],"has_more":true}`)
				return
			}
			io.WriteString(w, `{"object":"list","data":[{"id":"deb_3"}],"has_more":false}`)
		},
	})

	var ids []string
	for debt, err := range c.Debts.Iterate(context.Background(), &ListOptions{Limit: 2}) {
		if err != nil {
			t.Fatalf("Iterate: %v", err)
		}
		ids = append(ids, debt.ID)
	}

	want := []string{"deb_1", "deb_2", "deb_3"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestDebtsIterateStopsEarly(t *testing.T) {
	var pages int
	c := testClient(t, map[string]http.HandlerFunc{
		"GET /debts": func(w http.ResponseWriter, r *http.Request) {
			pages++
			testutil.JSONResponse(http.StatusOK,
				`{"object":"list","data":[{"id":"deb_1"},{"id":"deb_2"}],"has_more":true}`)(w, r)
		},
	})

	for debt, err := range c.Debts.Iterate(context.Background(), nil) {
		if err != nil {
			t.Fatalf("Iterate: %v", err)
		}
		if debt.ID == "deb_1" {
			break
		}
	}
	if pages != 1 {
		t.Errorf("pages fetched = %d, want 1 after early break", pages)
	}
}

func TestDebtsLifecycleSendsEmptyBody(t *testing.T) {
	var body map[string]any
	c := testClient(t, map[string]http.HandlerFunc{
		"POST /debts/deb_1/ready": func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode body: %v", err)
			}
			testutil.JSONResponse(http.StatusOK, `{"id":"deb_1","object":"debt"}`)(w, r)
		},
	})

	if _, err := c.Debts.Ready(context.Background(), "deb_1", nil); err != nil {
		t.Fatalf("Ready: %v", err)
	}
	if body == nil || len(body) != 0 {
		t.Errorf("body = %v, want empty JSON object", body)
	}
}

func TestDebtsResolveDisputePath(t *testing.T) {
	c := testClient(t, map[string]http.HandlerFunc{
		"POST /debts/deb_1/resolve-dispute": testutil.JSONResponse(http.StatusOK, `{"id":"deb_1","object":"debt"}`),
	})

	if _, err := c.Debts.ResolveDispute(context.Background(), "deb_1", map[string]any{"reason": "resolved"}); err != nil {
		t.Fatalf("ResolveDispute: %v", err)
	}
}

func TestCustomersContactDetails(t *testing.T) {
	c := testClient(t, map[string]http.HandlerFunc{
		"POST /customers/cus_1/contact_details": testutil.JSONResponse(http.StatusCreated,
			`{"id":"cd_1","object":"contact_detail","type":"email","value":"jane@example.com"}`),
		"DELETE /customers/cus_1/contact_details/cd_1": testutil.JSONResponse(http.StatusOK,
			`{"id":"cd_1","object":"contact_detail","type":"email","value":"jane@example.com","status":"deleted"}`),
	})

	detail, err := c.Customers.CreateContactDetail(context.Background(), "cus_1", &models.ContactDetail{
		Type:  models.ContactDetailTypeEmail,
		Value: "jane@example.com",
	})
	if err != nil {
		t.Fatalf("CreateContactDetail: %v", err)
	}
	if detail.ID != "cd_1" {
		t.Errorf("ID = %q, want cd_1", detail.ID)
	}

	deleted, err := c.Customers.DeleteContactDetail(context.Background(), "cus_1", "cd_1")
	if err != nil {
		t.Fatalf("DeleteContactDetail: %v", err)
	}
	if deleted.Status != "deleted" {
		t.Errorf("Status = %q, want deleted", deleted.Status)
	}
}

func TestPaymentPlanPathSpellings(t *testing.T) {
	c := testClient(t, map[string]http.HandlerFunc{
		"GET /payment_plans":              testutil.JSONResponse(http.StatusOK, `{"object":"list","data":[]}`),
		"GET /payment-plans/pp_1":         testutil.JSONResponse(http.StatusOK, `{"id":"pp_1","object":"payment_plan"}`),
		"PATCH /payment_plans/pp_1/delay": testutil.JSONResponse(http.StatusOK, `{"id":"pp_1","object":"payment_plan"}`),
	})

	if _, err := c.PaymentPlans.List(context.Background(), nil); err != nil {
		t.Errorf("List: %v", err)
	}
	if _, err := c.PaymentPlans.Get(context.Background(), "pp_1"); err != nil {
		t.Errorf("Get: %v", err)
	}
	if _, err := c.PaymentPlans.Delay(context.Background(), "pp_1", map[string]any{"days": 14}); err != nil {
		t.Errorf("Delay: %v", err)
	}
}

func TestTenantsMe(t *testing.T) {
	c := testClient(t, map[string]http.HandlerFunc{
		"GET /tenants/me": testutil.JSONResponse(http.StatusOK, `{"id":"ten_1","object":"tenant","name":"Acme"}`),
	})

	tenant, err := c.Tenants.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if tenant.ID != "ten_1" {
		t.Errorf("ID = %q, want ten_1", tenant.ID)
	}
}

func TestTestConnection(t *testing.T) {
	ok := testClient(t, map[string]http.HandlerFunc{
		"GET /tenants/me": testutil.JSONResponse(http.StatusOK, `{"id":"ten_1","object":"tenant"}`),
	})
	if !ok.TestConnection(context.Background()) {
		t.Error("TestConnection = false, want true")
	}

	bad := testClient(t, nil)
	if bad.TestConnection(context.Background()) {
		t.Error("TestConnection = true against a failing API")
	}
}

func TestParseErrorOnMalformedBody(t *testing.T) {
	c := testClient(t, map[string]http.HandlerFunc{
		"GET /debts/deb_1": testutil.JSONResponse(http.StatusOK, `{"id": deb_1}`),
	})

	_, err := c.Debts.Get(context.Background(), "deb_1")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("err = %v, want *ParseError", err)
	}
}

func TestBaseURLPerEnvironment(t *testing.T) {
	tests := []struct {
		env  auth.Environment
		want string
	}{
		{auth.EnvironmentProduction, "https://api.ophelos.com"},
		{auth.EnvironmentStaging, "https://api.ophelos.dev"},
		{auth.EnvironmentDevelopment, "http://api.localhost:3000"},
		{auth.Environment("unknown"), "https://api.ophelos.dev"},
	}
	for _, tt := range tests {
		if got := BaseURL(tt.env); got != tt.want {
			t.Errorf("BaseURL(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestUserAgentCarriesVersion(t *testing.T) {
	var userAgent string
	c := testClient(t, map[string]http.HandlerFunc{
		"GET /tenants/me": func(w http.ResponseWriter, r *http.Request) {
			userAgent = r.Header.Get("User-Agent")
			testutil.JSONResponse(http.StatusOK, `{"id":"ten_1","object":"tenant"}`)(w, r)
		},
	})

	if _, err := c.Tenants.Me(context.Background()); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if userAgent != "ophelos-go/"+Version {
		t.Errorf("User-Agent = %q, want ophelos-go/%s", userAgent, Version)
	}
}
