package background

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/aid-api/utils"
)

// OneSignalLanguageCode is a mapping between onesignal language code and i18n language code
var OneSignalLanguageCode = map[string]string{
	"zh-Hant": "zh_tw",
	"en":      "en",
}

// acceptedMessage renders localized push headings and contents for an
// accepted help request
func acceptedMessage(acceptorShortName string) (map[string]string, map[string]string) {
	headings := map[string]string{}
	contents := map[string]string{}

	for osLang, lang := range OneSignalLanguageCode {
		loc := utils.NewLocalizer(lang)

		if title, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.request_accepted.title",
		}); err == nil {
			headings[osLang] = title
		}

		if body, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.request_accepted.body",
			TemplateData: map[string]interface{}{
				"Helper": acceptorShortName,
			},
		}); err == nil {
			contents[osLang] = body
		}
	}

	return headings, contents
}
