// Package summit is the Go client for the Summit PT Clinic API, the
// HR/attendance backend covering time tracking, leave, overtime, weekly
// reports, payroll, and user administration.
//
// Operations are grouped by resource on the Client. Each call resolves the
// bearer credential through the configured credentials.TokenSource, issues
// exactly one HTTP request, and decodes the JSON response into a typed
// value. Non-2xx responses surface as *transport.Error carrying the status
// code, the raw body, and the backend's detail message.
//
// # Usage
//
//	cfg, err := summit.FromEnv()
//	if err != nil {
//	    return err
//	}
//	client, err := summit.New(cfg)
//
//	me, err := client.Users.Me(ctx)
//	records, err := client.Attendance.Mine(ctx)
//
//	_, err = client.Attendance.TimeIn(ctx, summit.TimeInRequest{
//	    TimeIn: "09:00",
//	    Status: "present",
//	})
//
// # Credentials
//
// The token is re-resolved on every call, so refresh stays with the
// identity provider's SDK:
//
//	client, err := summit.New(summit.Config{
//	    BaseURL: "https://api.summitpt.example",
//	    Credentials: credentials.TokenSourceFunc(func(ctx context.Context) (string, error) {
//	        return session.IDToken(ctx)
//	    }),
//	})
//
// # Errors
//
// The backend's wording is preserved on the error:
//
//	_, err := client.Leave.UpdateStatus(ctx, uid, id, summit.StatusApproved)
//	if apiErr, ok := transport.AsError(err); ok && transport.IsNotFound(err) {
//	    fmt.Println(apiErr.Message) // "Leave request not found"
//	}
package summit
