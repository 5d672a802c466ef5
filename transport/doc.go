// Package transport implements the single-shot HTTP primitive underneath
// the Summit API client.
//
// Every operation in package summit funnels through Client.Do: the bearer
// credential is resolved for that call, exactly one HTTP request goes out,
// and the response comes back with its status, headers, and raw body. There
// is no retry and no queueing; failures surface immediately. A non-2xx
// status additionally yields a *Error carrying the status code, the raw
// body, and the backend's detail message.
//
// # Usage
//
//	client, err := transport.New(transport.Config{
//	    BaseURL:     "http://localhost:8000",
//	    Credentials: credentials.Static(token),
//	})
//
//	resp, err := client.Do(ctx, transport.Request{
//	    Method: http.MethodGet,
//	    Path:   "/attendance/me",
//	})
package transport
