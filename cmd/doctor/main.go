package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/kbinani/screenshot"

	"github.com/roivaz/deskauto/internal/automation"
)

func main() {
	fmt.Println("Desktop Automation Host Status:")
	fmt.Println("===============================")

	failed := false

	if err := automation.Probe(); err != nil {
		fmt.Printf("❌ Automation backend: %v\n", err)
		failed = true
	} else {
		fmt.Printf("✅ Automation backend available on %s\n", runtime.GOOS)
	}

	displays := screenshot.NumActiveDisplays()
	if displays == 0 {
		fmt.Println("❌ No active displays detected")
		failed = true
	} else {
		fmt.Printf("✅ %d active display(s)\n", displays)
		for i := 0; i < displays; i++ {
			bounds := screenshot.GetDisplayBounds(i)
			fmt.Printf("   display %d: %dx%d at (%d, %d)\n", i, bounds.Dx(), bounds.Dy(), bounds.Min.X, bounds.Min.Y)
		}
	}

	_ = godotenv.Load("config.env")
	utility := getenv("CAPTURE_UTILITY_PATH", "screencapture")
	if runtime.GOOS == "darwin" {
		if path, err := exec.LookPath(utility); err != nil {
			fmt.Printf("❌ Capture fallback utility %q not found on PATH\n", utility)
			failed = true
		} else {
			fmt.Printf("✅ Capture fallback utility: %s\n", path)
		}
	} else {
		fmt.Println("ℹ️  Capture fallback utility only applies on macOS")
	}

	if failed {
		os.Exit(1)
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
