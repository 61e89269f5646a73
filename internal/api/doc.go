// Package api provides the poe.ninja data API client.
//
// Endpoints (relative to https://poe.ninja/api/data):
//   - GET /currencyoverview?league={league}&type={Currency|Fragment}
//   - GET /itemoverview?league={league}&type={item type}
//
// Every call is a single request: no retries, no caching, no pagination.
// Failures surface as *TransportError (network, timeout, non-2xx status) or
// *model.SchemaError (body does not match the overview schema).
package api
