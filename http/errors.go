package http

import (
	"strings"

	"github.com/fwojciec/dashmcp"
)

// remediationHint is appended to errors the user can fix themselves.
const remediationHint = "Please ensure Dash is running and the API server is enabled (in Dash Settings > Integration)."

// mapAPIError classifies an upstream 4xx/5xx response into an actionable
// domain error by matching known substrings in the response body. The
// phrases below are Dash's exact wording; if upstream wording changes the
// classification silently degrades to the generic fallback, which is the
// intended failure mode.
func mapAPIError(status int, body string) error {
	switch {
	case status == 400 && strings.Contains(body, "Docset with identifier") && strings.Contains(body, "not found"):
		return dashmcp.Errorf(dashmcp.ENOTFOUND,
			"Invalid docset identifier. Run list_installed_docsets to see available docsets, then use the exact identifier from that list.")

	case status == 400 && strings.Contains(body, "No docsets found"):
		return dashmcp.Errorf(dashmcp.EINVALID,
			"No valid docsets found for search. Either provide valid docset identifiers from list_installed_docsets, or set search_snippets=true to search snippets only.")

	case status == 400:
		return dashmcp.Errorf(dashmcp.EINVALID, "Bad request: %s. %s", strings.TrimSpace(body), remediationHint)

	case status == 403 && strings.Contains(body, "API access blocked due to Dash trial expiration"):
		return dashmcp.Errorf(dashmcp.EFORBIDDEN,
			"Your Dash trial has expired. Purchase Dash at https://kapeli.com/dash to continue using the API. During trial expiration, API access is blocked.")

	case status == 403:
		return dashmcp.Errorf(dashmcp.EFORBIDDEN, "Forbidden: %s. %s", strings.TrimSpace(body), remediationHint)

	default:
		return dashmcp.Errorf(dashmcp.EUNAVAILABLE, "Dash API error (HTTP %d). %s", status, remediationHint)
	}
}
