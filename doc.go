// Package ophelos is the official Go client for the Ophelos debt-management API.
//
// A Client authenticates with OAuth2 client credentials (or a pre-obtained
// token), exposes one service per API resource, and handles retries, error
// mapping and pagination.
//
// # Quick Start
//
//	client := ophelos.NewClient(
//	    "client-id",
//	    "client-secret",
//	    "https://api.ophelos.com",
//	    auth.EnvironmentStaging,
//	    ophelos.WithTenantID("ten_123"),
//	)
//
//	debt, err := client.Debts.Get(ctx, "deb_123", "customer")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Pagination
//
//	for debt, err := range client.Debts.Iterate(ctx, &ophelos.ListOptions{Limit: 50}) {
//	    if err != nil {
//	        return err
//	    }
//	    process(debt)
//	}
//
// # Webhooks
//
// Inbound webhook deliveries are verified with the webhooks package; see
// webhooks.ConstructEvent.
package ophelos
