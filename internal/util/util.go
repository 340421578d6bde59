//go:build !windows

package util

// EnableUTF8Console is a no-op outside Windows; terminals there are expected
// to handle UTF-8 already.
func EnableUTF8Console() error {
	return nil
}
