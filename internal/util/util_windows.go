//go:build windows

package util

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const cpUTF8 = 65001

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleOutputCP = kernel32.NewProc("SetConsoleOutputCP")
)

// EnableUTF8Console switches the console output code page to UTF-8 so suite
// names and comments print unmangled in the overwrite prompt and reports.
func EnableUTF8Console() error {
	if err := procSetConsoleOutputCP.Find(); err != nil {
		return fmt.Errorf("find SetConsoleOutputCP: %w", err)
	}
	r, _, err := procSetConsoleOutputCP.Call(uintptr(cpUTF8))
	if r == 0 {
		return fmt.Errorf("SetConsoleOutputCP: %w", err)
	}
	return nil
}
