//go:build windows

package window

import (
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	DWMWA_USE_IMMERSIVE_DARK_MODE = 20
	DWMWA_BORDER_COLOR            = 34
	DWMWA_CAPTION_COLOR           = 35
)

// setDarkTitleBar matches the window chrome to the black scene.
func setDarkTitleBar(window *glfw.Window) {
	hwnd := window.GetWin32Window()
	if hwnd == nil {
		return
	}
	var useDarkMode int32 = 1
	setAttribute(uintptr(unsafe.Pointer(hwnd)), DWMWA_USE_IMMERSIVE_DARK_MODE, uintptr(unsafe.Pointer(&useDarkMode)), unsafe.Sizeof(useDarkMode))

	var black uint32 = 0x00000000
	setAttribute(uintptr(unsafe.Pointer(hwnd)), DWMWA_BORDER_COLOR, uintptr(unsafe.Pointer(&black)), unsafe.Sizeof(black))
	setAttribute(uintptr(unsafe.Pointer(hwnd)), DWMWA_CAPTION_COLOR, uintptr(unsafe.Pointer(&black)), unsafe.Sizeof(black))
}

func setAttribute(hwnd uintptr, attribute uintptr, value uintptr, size uintptr) {
	procDwmSetWindowAttribute.Call(hwnd, attribute, value, size)
}
