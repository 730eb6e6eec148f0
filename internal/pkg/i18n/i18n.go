package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type Messages map[string]string

var (
	locales = make(map[string]Messages)
	mu      sync.RWMutex
)

// defaults is the compiled-in English copy for outbound mail. Locale
// files on disk override it; a missing or broken locale dir never
// leaves a subject line blank.
var defaults = Messages{
	"email.welcome.subject": "Welcome to Job Portal!",
	"email.welcome.title":   "Welcome to Job Portal",

	"email.verify.subject": "Verify Your Email - Job Portal",
	"email.verify.title":   "Verify Your Email",

	"email.reset.subject": "Password Reset Request - Job Portal",
	"email.reset.title":   "Reset Your Password",

	"email.job_approved.subject": "%q is now live - Job Portal",
	"email.job_approved.title":   "Your Job Listing Is Live",

	"email.job_declined.subject": "%q was declined - Job Portal",
	"email.job_declined.title":   "Job Listing Declined",

	"email.application_received.subject": "New application for %q - Job Portal",
	"email.application_received.title":   "New Application",

	"email.application_status.subject": "Update on your application for %q - Job Portal",
	"email.application_status.title":   "Application Update",
}

// LoadMessages reads every <localePath>/<locale>/messages.yaml into
// the catalog. Locales without a messages file are skipped.
func LoadMessages(localePath string) error {
	mu.Lock()
	defer mu.Unlock()

	entries, err := os.ReadDir(localePath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locale := entry.Name()
		filePath := filepath.Join(localePath, locale, "messages.yaml")

		data, err := os.ReadFile(filePath)
		if err != nil {
			continue
		}

		var config struct {
			Messages Messages `yaml:"MESSAGES"`
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filePath, err)
		}

		locales[locale] = config.Messages
	}

	return nil
}

// T resolves a message key for a locale, falling back to English and
// then to the compiled-in defaults. An unknown key comes back as-is.
func T(locale, key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if msgs, ok := locales[locale]; ok {
		if val, ok := msgs[key]; ok {
			return val
		}
	}

	if locale != "en" {
		if msgs, ok := locales["en"]; ok {
			if val, ok := msgs[key]; ok {
				return val
			}
		}
	}

	if val, ok := defaults[key]; ok {
		return val
	}

	return key
}
