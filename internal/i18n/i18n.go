// Package i18n provides the static display-string tables for all supported
// languages. Lookup is pure: no state, no formatting.
package i18n

import "github.com/srivalli27/dhanai/internal/model"

// Key identifies a translatable display string.
type Key string

// Translation keys used by the view layer.
const (
	KeyWelcomeTo          Key = "welcomeTo"
	KeyWelcomeBack        Key = "welcomeBack"
	KeySignIn             Key = "signIn"
	KeyPhoneNumber        Key = "phoneNumber"
	KeyEnterPhoneNumber   Key = "enterPhoneNumber"
	KeySendOTP            Key = "sendOtp"
	KeyEnterOTP           Key = "enterOtp"
	KeyVerifyOTP          Key = "verifyOtp"
	KeyEnterCaptcha       Key = "enterCaptcha"
	KeyVerify             Key = "verify"
	KeyInvalidPhone       Key = "invalidPhoneNumber"
	KeyInvalidOTP         Key = "invalidOtp"
	KeyInvalidCaptcha     Key = "invalidCaptcha"
	KeyModePrompt         Key = "modePrompt"
	KeyPersonal           Key = "personal"
	KeyBusiness           Key = "business"
	KeyHome               Key = "home"
	KeyHistory            Key = "history"
	KeyProfile            Key = "profile"
	KeyEMI                Key = "emi"
	KeyEMIDashboard       Key = "emiDashboard"
	KeyAutoPay            Key = "autoPay"
	KeyAdvisor            Key = "advisor"
	KeyAIAdvisor          Key = "aiAdvisor"
	KeyAIGreeting         Key = "aiGreeting"
	KeyAskAdvice          Key = "askAdvicePlaceholder"
	KeyAsk                Key = "ask"
	KeyTotalBalance       Key = "totalBalance"
	KeyRecentTransactions Key = "recentTransactions"
	KeyTransactionHistory Key = "transactionHistory"
	KeySpendingSummary    Key = "spendingSummary"
	KeyNoSpendingData     Key = "noSpendingData"
	KeySMELedger          Key = "smeLedger"
	KeyAddTransaction     Key = "addTransaction"
	KeyAmount             Key = "amount"
	KeyTransactionType    Key = "transactionType"
	KeyVendorDescription  Key = "vendorDescription"
	KeyIncome             Key = "income"
	KeyExpense            Key = "expense"
	KeyCategory           Key = "category"
	KeyCategorize         Key = "categorize"
	KeyCorrectCategory    Key = "correctCategory"
	KeyAlwaysCategorize   Key = "alwaysCategorize"
	KeySubmitCorrection   Key = "submitCorrection"
	KeySettings           Key = "settings"
	KeyTheme              Key = "theme"
	KeyLight              Key = "light"
	KeyDark               Key = "dark"
	KeyLanguage           Key = "language"
	KeySwitchMode         Key = "switchMode"
	KeyLogout             Key = "logout"
	KeyNextPayment        Key = "nextPayment"
	KeyNextDueDate        Key = "nextDueDate"
	KeyPrincipal          Key = "principal"
	KeyInterest           Key = "interest"
	KeyTenure             Key = "tenure"
	KeySave               Key = "save"
	KeyClose              Key = "close"
)

// Translate resolves key for the requested language with the fallback chain
// requested language -> English -> raw key.
func Translate(lang model.Language, key Key) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[model.LanguageEnglish][key]; ok {
		return s
	}
	return string(key)
}

// Translator returns a lookup function bound to one language, matching the
// shape the view layer consumes.
func Translator(lang model.Language) func(Key) string {
	return func(key Key) string {
		return Translate(lang, key)
	}
}
