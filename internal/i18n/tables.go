package i18n

import "github.com/srivalli27/dhanai/internal/model"

// tables holds the per-language string tables. English is the complete
// reference table; the other languages translate the high-traffic strings
// and fall back to English for the rest.
var tables = map[model.Language]map[Key]string{
	model.LanguageEnglish: {
		KeyWelcomeTo:          "Welcome to DhanAI",
		KeyWelcomeBack:        "Welcome back",
		KeySignIn:             "Sign In",
		KeyPhoneNumber:        "Phone Number",
		KeyEnterPhoneNumber:   "Enter your phone number",
		KeySendOTP:            "Send OTP",
		KeyEnterOTP:           "Enter the OTP",
		KeyVerifyOTP:          "Verify OTP",
		KeyEnterCaptcha:       "Enter the captcha",
		KeyVerify:             "Verify",
		KeyInvalidPhone:       "Please enter a valid 10-digit phone number",
		KeyInvalidOTP:         "Invalid OTP, please try again",
		KeyInvalidCaptcha:     "Captcha does not match",
		KeyModePrompt:         "How would you like to manage your money?",
		KeyPersonal:           "Personal",
		KeyBusiness:           "Business",
		KeyHome:               "Home",
		KeyHistory:            "History",
		KeyProfile:            "Profile",
		KeyEMI:                "EMI",
		KeyEMIDashboard:       "EMI Dashboard",
		KeyAutoPay:            "AutoPay Mandates",
		KeyAdvisor:            "Advisor",
		KeyAIAdvisor:          "DhanAI Advisor",
		KeyAIGreeting:         "Hello! How can I help with your finances today?",
		KeyAskAdvice:          "Ask for financial advice...",
		KeyAsk:                "Ask",
		KeyTotalBalance:       "Total Balance",
		KeyRecentTransactions: "Recent Transactions",
		KeyTransactionHistory: "Transaction History",
		KeySpendingSummary:    "Spending Summary",
		KeyNoSpendingData:     "No spending data yet",
		KeySMELedger:          "SME Ledger Summary",
		KeyAddTransaction:     "Add Transaction",
		KeyAmount:             "Amount",
		KeyTransactionType:    "Type",
		KeyVendorDescription:  "Description",
		KeyIncome:             "Income",
		KeyExpense:            "Expense",
		KeyCategory:           "Category",
		KeyCategorize:         "Categorize",
		KeyCorrectCategory:    "Correct Category",
		KeyAlwaysCategorize:   "Always categorize this as",
		KeySubmitCorrection:   "Submit Correction",
		KeySettings:           "Settings",
		KeyTheme:              "Theme",
		KeyLight:              "Light",
		KeyDark:               "Dark",
		KeyLanguage:           "Language",
		KeySwitchMode:         "Switch Mode",
		KeyLogout:             "Log Out",
		KeyNextPayment:        "Next payment",
		KeyNextDueDate:        "Next due date",
		KeyPrincipal:          "Principal",
		KeyInterest:           "Interest",
		KeyTenure:             "Tenure",
		KeySave:               "Save",
		KeyClose:              "Close",
	},
	model.LanguageHindi: {
		KeyWelcomeTo:          "DhanAI में आपका स्वागत है",
		KeyWelcomeBack:        "वापसी पर स्वागत है",
		KeySignIn:             "साइन इन करें",
		KeyPhoneNumber:        "फ़ोन नंबर",
		KeyEnterPhoneNumber:   "अपना फ़ोन नंबर दर्ज करें",
		KeySendOTP:            "OTP भेजें",
		KeyVerifyOTP:          "OTP सत्यापित करें",
		KeyHome:               "होम",
		KeyHistory:            "इतिहास",
		KeyProfile:            "प्रोफ़ाइल",
		KeyTotalBalance:       "कुल शेष राशि",
		KeyRecentTransactions: "हाल के लेन-देन",
		KeyTransactionHistory: "लेन-देन इतिहास",
		KeyAddTransaction:     "लेन-देन जोड़ें",
		KeyAmount:             "राशि",
		KeyIncome:             "आय",
		KeyExpense:            "खर्च",
		KeyCategory:           "श्रेणी",
		KeySettings:           "सेटिंग्स",
		KeyLanguage:           "भाषा",
		KeyLogout:             "लॉग आउट",
		KeyPersonal:           "व्यक्तिगत",
		KeyBusiness:           "व्यवसाय",
	},
	model.LanguageTelugu: {
		KeyWelcomeTo:          "DhanAI కి స్వాగతం",
		KeySignIn:             "సైన్ ఇన్ చేయండి",
		KeyPhoneNumber:        "ఫోన్ నంబర్",
		KeyHome:               "హోమ్",
		KeyHistory:            "చరిత్ర",
		KeyProfile:            "ప్రొఫైల్",
		KeyTotalBalance:       "మొత్తం నిల్వ",
		KeyRecentTransactions: "ఇటీవలి లావాదేవీలు",
		KeyAddTransaction:     "లావాదేవీ జోడించండి",
		KeyAmount:             "మొత్తం",
		KeyIncome:             "ఆదాయం",
		KeyExpense:            "ఖర్చు",
		KeyCategory:           "వర్గం",
		KeySettings:           "సెట్టింగ్‌లు",
		KeyLanguage:           "భాష",
		KeyLogout:             "లాగ్ అవుట్",
		KeyPersonal:           "వ్యక్తిగతం",
		KeyBusiness:           "వ్యాపారం",
	},
	model.LanguageTamil: {
		KeyWelcomeTo:          "DhanAI க்கு வரவேற்கிறோம்",
		KeySignIn:             "உள்நுழைக",
		KeyPhoneNumber:        "தொலைபேசி எண்",
		KeyHome:               "முகப்பு",
		KeyHistory:            "வரலாறு",
		KeyProfile:            "சுயவிவரம்",
		KeyTotalBalance:       "மொத்த இருப்பு",
		KeyRecentTransactions: "சமீபத்திய பரிவர்த்தனைகள்",
		KeyAddTransaction:     "பரிவர்த்தனை சேர்",
		KeyAmount:             "தொகை",
		KeyIncome:             "வருமானம்",
		KeyExpense:            "செலவு",
		KeyCategory:           "வகை",
		KeySettings:           "அமைப்புகள்",
		KeyLanguage:           "மொழி",
		KeyLogout:             "வெளியேறு",
		KeyPersonal:           "தனிப்பட்டது",
		KeyBusiness:           "வணிகம்",
	},
}
