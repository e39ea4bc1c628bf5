// Package content defines HelpMate's first-run slides and pledge text in
// terms of localization keys.
package content

import (
	"github.com/NovaNexusIO/HelpMate/internal/i18n"
	"github.com/NovaNexusIO/HelpMate/internal/onboarding"
)

// slideDef pairs localization keys with theme keys.
type slideDef struct {
	titleKey   string
	descKey    string
	accent     string
	background string
}

var slideDefs = []slideDef{
	{"onboardingSlide1Title", "onboardingSlide1Desc", "heart", "blue"},
	{"onboardingSlide2Title", "onboardingSlide2Desc", "award", "purple"},
	{"onboardingSlide3Title", "onboardingSlide3Desc", "globe", "green"},
}

var pledgePointKeys = []string{
	"pledgePoint1",
	"pledgePoint2",
	"pledgePoint3",
	"pledgePoint4",
}

// Slides returns the onboarding deck resolved through tr.
func Slides(tr i18n.Translator) []onboarding.SlideContent {
	slides := make([]onboarding.SlideContent, len(slideDefs))
	for i, d := range slideDefs {
		slides[i] = onboarding.SlideContent{
			Title:       tr.T(d.titleKey),
			Description: tr.T(d.descKey),
			Accent:      d.accent,
			Background:  d.background,
		}
	}
	return slides
}

// Pledge is the text shown by the consent step.
type Pledge struct {
	Title     string
	Subtitle  string
	Heading   string
	Points    []string
	Warning   string
	Agreement string
	Accept    string
}

// PledgeText returns the pledge resolved through tr.
func PledgeText(tr i18n.Translator) Pledge {
	points := make([]string, len(pledgePointKeys))
	for i, k := range pledgePointKeys {
		points[i] = tr.T(k)
	}
	return Pledge{
		Title:     tr.T("communityPledge"),
		Subtitle:  tr.T("maintainSafeCommunity"),
		Heading:   tr.T("iPledgeTo"),
		Points:    points,
		Warning:   tr.T("pledgeWarning"),
		Agreement: tr.T("agreeToPledge"),
		Accept:    tr.T("iAccept"),
	}
}

// Labels are the onboarding control captions.
type Labels struct {
	Skip       string
	Continue   string
	GetStarted string
}

// OnboardingLabels returns the control captions resolved through tr.
func OnboardingLabels(tr i18n.Translator) Labels {
	return Labels{
		Skip:       tr.T("skip"),
		Continue:   tr.T("continue"),
		GetStarted: tr.T("getStarted"),
	}
}

// Home is the text of the screen reached after the pledge.
type Home struct {
	Title       string
	Description string
	AskForHelp  string
	OfferHelp   string
	Quit        string
	ComingSoon  string
}

// HomeText returns the home screen text resolved through tr.
func HomeText(tr i18n.Translator) Home {
	return Home{
		Title:       tr.T("welcomeHome"),
		Description: tr.T("welcomeHomeDesc"),
		AskForHelp:  tr.T("askForHelp"),
		OfferHelp:   tr.T("offerHelp"),
		Quit:        tr.T("quit"),
		ComingSoon:  tr.T("comingSoon"),
	}
}

// Splash is the text of the welcome splash.
type Splash struct {
	Tagline     string
	PressAnyKey string
}

// SplashText returns the splash text resolved through tr.
func SplashText(tr i18n.Translator) Splash {
	return Splash{
		Tagline:     tr.T("tagline"),
		PressAnyKey: tr.T("pressAnyKey"),
	}
}
