// Package auth provides the Principal type describing an authenticated
// caller and a TokenIssuer that mints and verifies the HMAC-signed access
// tokens drivers and operators present to the API.
package auth
