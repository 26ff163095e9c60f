package parts

import (
	"log"
	"os"
	"sync"
)

// GetCriticalCSS reads the critical CSS file and returns it as a string.
func GetCriticalCSS() (string, error) {
	css, err := os.ReadFile("assets/storefront.min.css")
	if err != nil {
		log.Println("Critical CSS error:", err)
		return "", err
	}
	return string(css), nil
}

var (
	criticalCSSOnce   sync.Once
	criticalCSSCached string
)

// GetCriticalCSSCached reads the critical CSS once per process. A missing
// file degrades to an empty string rather than failing the page.
func GetCriticalCSSCached() (string, error) {
	criticalCSSOnce.Do(func() {
		css, err := GetCriticalCSS()
		if err != nil {
			return
		}
		criticalCSSCached = css
	})
	return criticalCSSCached, nil
}
