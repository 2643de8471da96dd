package ophelos_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	ophelos "github.com/ophelos/ophelos-go"
	"github.com/ophelos/ophelos-go/auth"
	"github.com/ophelos/ophelos-go/webhooks"
)

func ExampleNewClient() {
	client := ophelos.NewClient(
		"client-id",
		"client-secret",
		"https://api.ophelos.com",
		auth.EnvironmentStaging,
		ophelos.WithTenantID("ten_123"),
	)

	debt, err := client.Debts.Get(context.Background(), "deb_123", "customer")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(debt.ID)
}

func ExampleDebtsService_Iterate() {
	client := ophelos.NewClientWithToken("access-token", auth.EnvironmentStaging)

	for debt, err := range client.Debts.Iterate(context.Background(), &ophelos.ListOptions{Limit: 50}) {
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(debt.ID, debt.BalanceAmount())
	}
}

func Example_webhookVerification() {
	handler := func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "read failed", http.StatusBadRequest)
			return
		}

		event, err := webhooks.ConstructEvent(
			payload,
			r.Header.Get("Ophelos-Signature"),
			"whsec_secret",
			5*time.Minute,
		)
		if err != nil {
			http.Error(w, "verification failed", http.StatusBadRequest)
			return
		}

		fmt.Println(event.Type)
		w.WriteHeader(http.StatusOK)
	}
	_ = handler
}
