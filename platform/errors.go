package platform

import "fmt"

// CapabilityError reports a required host capability missing at startup.
// It is the only fatal condition: without a drawing surface or audio
// context there is no fallback path, so startup aborts before the loop
// ever runs.
type CapabilityError struct {
	Capability string
	Reason     string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("platform: %s capability unavailable: %s", e.Capability, e.Reason)
}
