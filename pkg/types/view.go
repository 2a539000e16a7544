package types

type Section string

const (
	SectionHome      Section = "home"
	SectionNeeds     Section = "needs"
	SectionNGOs      Section = "ngos"
	SectionDashboard Section = "dashboard"
	SectionAbout     Section = "about"
)

func Sections() []Section {
	return []Section{SectionHome, SectionNeeds, SectionNGOs, SectionDashboard, SectionAbout}
}

func ParseSection(raw string) (Section, bool) {
	for _, s := range Sections() {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

type DashboardTab string

const (
	TabOverview  DashboardTab = "overview"
	TabDonations DashboardTab = "donations"
	TabPostNeed  DashboardTab = "postneed"
)

func DashboardTabs() []DashboardTab {
	return []DashboardTab{TabOverview, TabDonations, TabPostNeed}
}

func ParseDashboardTab(raw string) (DashboardTab, bool) {
	for _, t := range DashboardTabs() {
		if string(t) == raw {
			return t, true
		}
	}
	return "", false
}
