package monitoring

import "strings"

// getSegmentName trims a runtime function name such as
// "github.com/amberpay/go-weavr-sync/internal/services.(*accountSync).SyncAccountCreation"
// down to "services.accountSync.SyncAccountCreation".
func getSegmentName(fullFuncName string) string {
	name := fullFuncName
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	parts := strings.Split(name, ".")
	for i, part := range parts {
		part = strings.TrimPrefix(part, "(*")
		part = strings.TrimSuffix(part, ")")
		parts[i] = part
	}

	return strings.Join(parts, ".")
}
