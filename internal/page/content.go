package page

// Copy shown on the landing page overlay.

type heroContent struct {
	Title    string
	Subtitle string
	Buttons  []string
	Accents  int
}

type cardContent struct {
	Title string
	Body  string
}

type statContent struct {
	Label  string
	Target int
	Suffix string
}

var hero = heroContent{
	Title:    "Websites that win you customers",
	Subtitle: "Design, build and launch in weeks, not months.",
	Buttons:  []string{"Start a project", "See our work"},
	Accents:  2,
}

var howItWorks = []cardContent{
	{"Discovery call", "We learn your business, goals and audience."},
	{"Design & build", "A fast, responsive site crafted around your brand."},
	{"Launch & grow", "Go live with analytics, SEO and ongoing support."},
}

var features = []cardContent{
	{"Mobile first", "Every page is tuned for phones before desktops."},
	{"Built for speed", "Lean pages that load in under a second."},
	{"Search ready", "Clean markup and metadata from day one."},
}

var reviews = []cardContent{
	{"Nadia R.", "Our bookings doubled within a month of launch."},
	{"Tanvir H.", "Clear process, on time, and the site looks amazing."},
	{"Sara K.", "They answered every question and delivered beyond scope."},
}

var stats = []statContent{
	{"Projects delivered", 120, "+"},
	{"Client satisfaction", 98, "%"},
	{"Years in business", 6, ""},
}
