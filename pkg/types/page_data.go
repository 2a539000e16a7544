package types

type NavbarData struct {
	IsAuthenticated bool
	UserName        string
	UserRole        Role
	ActiveSection   Section
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type NoticeSetter interface {
	SetNotification(n *Notification)
}

type BasePageData struct {
	Title        string
	Navbar       NavbarData
	Notification *Notification
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

func (d *BasePageData) SetNotification(n *Notification) {
	d.Notification = n
}

type HomePageData struct {
	BasePageData
	FeaturedNeeds []*Need
	NGOs          []*NGO
	Stats         PlatformStats
}

type NeedsPageData struct {
	BasePageData
	Needs      []*Need
	Filter     NeedFilter
	Categories []NeedCategory
	Priorities []NeedPriority
}

type NGOsPageData struct {
	BasePageData
	NGOs []*NGO
}

type NeedDetailPageData struct {
	BasePageData
	Need *Need
	NGO  *NGO
}

type DashboardPageData struct {
	BasePageData
	Identity   *Identity
	ActiveTab  DashboardTab
	Tabs       []DashboardTab
	Needs      []*Need
	NGOs       []*NGO
	Categories []NeedCategory
	Priorities []NeedPriority
}

type LoginPageData struct {
	BasePageData
	Email string
	Error string
}

type RegisterPageData struct {
	BasePageData
	Name        string
	Email       string
	Role        string
	Error       string
	FieldErrors map[string]string
	Roles       []Role
}

type AboutPageData struct {
	BasePageData
	Stats PlatformStats
}
