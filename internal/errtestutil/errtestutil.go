package errtestutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/iver-wharf/wharf-valconv/internal/errutil"
)

// RequireContainsErr fails the test if no error in the slice Is the given
// error.
func RequireContainsErr(t *testing.T, errs errutil.Slice, err error) {
	t.Helper()
	for _, e := range errs {
		if errors.Is(e, err) {
			return
		}
	}
	t.Fatalf("\nexpected contains error: %q\nactual: (len=%d)\n%s",
		err, len(errs), formatSlice("  - ", errs))
}

// RequireNotContainsErr fails the test if any error in the slice Is the given
// error.
func RequireNotContainsErr(t *testing.T, errs errutil.Slice, err error) {
	t.Helper()
	for i, e := range errs {
		if errors.Is(e, err) {
			t.Fatalf("\nexpected not to contain error: %q\nfound at index=%d\nactual: (len=%d)\n%s",
				err, i, len(errs), formatSlice("  - ", errs))
		}
	}
}

// RequireNoErr fails the test if the error slice is not empty.
func RequireNoErr(t *testing.T, errs errutil.Slice) {
	t.Helper()
	if len(errs) == 0 {
		return
	}
	t.Fatalf("\nexpected no errors\nactual: (len=%d)\n%s",
		len(errs), formatSlice("  - ", errs))
}

// RequireScopes fails the test unless the errors in the slice have exactly
// the given scopes, in order.
func RequireScopes(t *testing.T, errs errutil.Slice, scopes ...string) {
	t.Helper()
	got := make([]string, len(errs))
	for i, err := range errs {
		got[i] = errutil.AsScope(err)
	}
	if strings.Join(got, "\n") == strings.Join(scopes, "\n") && len(got) == len(scopes) {
		return
	}
	t.Fatalf("\nexpected scopes: %q\nactual scopes: %q\nerrors: (len=%d)\n%s",
		scopes, got, len(errs), formatSlice("  - ", errs))
}

func formatSlice(prefix string, errs errutil.Slice) string {
	var sb strings.Builder
	for i, err := range errs {
		fmt.Fprintf(&sb, "%s[i=%d] %s\n", prefix, i, errutil.Describe(err))
	}
	return sb.String()
}
