package seeder

import (
	"fmt"
	"strings"
)

// city is an entry of the fixed location catalog. Coordinates are the
// approximate city center; generated locations jitter around them.
type city struct {
	Name    string
	Country string
	Lat     float64
	Lng     float64
}

var majorCities = []city{
	{"New York", "USA", 40.7128, -74.0060},
	{"Los Angeles", "USA", 34.0522, -118.2437},
	{"Chicago", "USA", 41.8781, -87.6298},
	{"Houston", "USA", 29.7604, -95.3698},
	{"Toronto", "Canada", 43.6532, -79.3832},
	{"Vancouver", "Canada", 49.2827, -123.1207},
	{"Mexico City", "Mexico", 19.4326, -99.1332},
	{"London", "UK", 51.5074, -0.1278},
	{"Manchester", "UK", 53.4808, -2.2426},
	{"Paris", "France", 48.8566, 2.3522},
	{"Lyon", "France", 45.7640, 4.8357},
	{"Berlin", "Germany", 52.5200, 13.4050},
	{"Munich", "Germany", 48.1351, 11.5820},
	{"Hamburg", "Germany", 53.5511, 9.9937},
	{"Madrid", "Spain", 40.4168, -3.7038},
	{"Barcelona", "Spain", 41.3851, 2.1734},
	{"Rome", "Italy", 41.9028, 12.4964},
	{"Milan", "Italy", 45.4642, 9.1900},
	{"Amsterdam", "Netherlands", 52.3676, 4.9041},
	{"Brussels", "Belgium", 50.8503, 4.3517},
	{"Vienna", "Austria", 48.2082, 16.3738},
	{"Zurich", "Switzerland", 47.3769, 8.5417},
	{"Stockholm", "Sweden", 59.3293, 18.0686},
	{"Oslo", "Norway", 59.9139, 10.7522},
	{"Copenhagen", "Denmark", 55.6761, 12.5683},
	{"Helsinki", "Finland", 60.1699, 24.9384},
	{"Warsaw", "Poland", 52.2297, 21.0122},
	{"Krakow", "Poland", 50.0647, 19.9450},
	{"Prague", "Czechia", 50.0755, 14.4378},
	{"Budapest", "Hungary", 47.4979, 19.0402},
	{"Lisbon", "Portugal", 38.7223, -9.1393},
	{"Dublin", "Ireland", 53.3498, -6.2603},
	{"Athens", "Greece", 37.9838, 23.7275},
	{"Kyiv", "Ukraine", 50.4501, 30.5234},
	{"Lviv", "Ukraine", 49.8397, 24.0297},
	{"Istanbul", "Turkey", 41.0082, 28.9784},
	{"Dubai", "UAE", 25.2048, 55.2708},
	{"Tel Aviv", "Israel", 32.0853, 34.7818},
	{"Singapore", "Singapore", 1.3521, 103.8198},
	{"Tokyo", "Japan", 35.6762, 139.6503},
	{"Osaka", "Japan", 34.6937, 135.5023},
	{"Seoul", "South Korea", 37.5665, 126.9780},
	{"Hong Kong", "China", 22.3193, 114.1694},
	{"Sydney", "Australia", -33.8688, 151.2093},
	{"Melbourne", "Australia", -37.8136, 144.9631},
	{"Auckland", "New Zealand", -36.8485, 174.7633},
	{"Sao Paulo", "Brazil", -23.5505, -46.6333},
	{"Buenos Aires", "Argentina", -34.6037, -58.3816},
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Emily", "Anthony", "Margaret", "Mark", "Sandra", "Steven", "Ashley",
	"Andrew", "Dorothy", "Paul", "Kimberly", "Joshua", "Donna", "Kenneth", "Michelle",
	"Kevin", "Carol", "Brian", "Amanda", "George", "Melissa", "Timothy", "Deborah",
	"Oleh", "Iryna", "Andriy", "Kateryna", "Taras", "Olena", "Dmytro", "Sofia",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
	"Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Clark",
	"Lewis", "Robinson", "Walker", "Young", "Allen", "King", "Wright", "Scott",
	"Shevchenko", "Kovalenko", "Bondarenko", "Tkachenko", "Melnyk", "Kravchenko",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com",
	"icloud.com", "mail.com", "fastmail.com", "zoho.com",
}

var companyAdjectives = []string{
	"Bright", "Global", "Prime", "Urban", "Golden", "Silver", "Vivid", "Summit",
	"Stellar", "Atlas", "Nova", "Apex", "Crimson", "Azure", "Velvet", "Amber",
}

var companyNouns = []string{
	"Stage", "Arena", "Horizon", "Wave", "Spark", "Beacon", "Orbit", "Pulse",
	"Forge", "Harbor", "Canvas", "Bridge", "Compass", "Lantern", "Meadow", "Echo",
}

var companySuffixes = []string{
	"Events", "Productions", "Group", "Collective", "Agency", "Media", "Labs", "Co",
}

var buzzAdjectives = []string{
	"Immersive", "Unforgettable", "Electrifying", "Inspiring", "Legendary",
	"Exclusive", "Vibrant", "Grand", "Intimate", "Open-Air",
}

var buzzNouns = []string{
	"Experience", "Showcase", "Summit", "Gala", "Festival", "Night", "Session",
	"Gathering", "Expo", "Celebration",
}

var buzzTopics = []string{
	"Jazz", "Tech", "Design", "Food", "Film", "Startup", "Art", "Science",
	"Wellness", "Fashion", "Gaming", "Literature",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint",
	"occaecat", "cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia",
	"deserunt", "mollit", "anim", "id", "est", "laborum",
}

// fullName returns a random "First Last" pair.
func (r *Rand) fullName() (first, last string) {
	return PickAny(r, firstNames), PickAny(r, lastNames)
}

// companyName builds a plausible organizer name like "Golden Wave Events".
func (r *Rand) companyName() string {
	return PickAny(r, companyAdjectives) + " " + PickAny(r, companyNouns) + " " + PickAny(r, companySuffixes)
}

// catchphrase builds a title like "Electrifying Jazz Festival".
func (r *Rand) catchphrase() string {
	return PickAny(r, buzzAdjectives) + " " + PickAny(r, buzzTopics) + " " + PickAny(r, buzzNouns)
}

// sentence returns a capitalized lorem sentence of 6-12 words.
func (r *Rand) sentence() string {
	n := r.IntBetween(6, 12)
	words := make([]string, n)
	for i := range words {
		words[i] = PickAny(r, loremWords)
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// sentences joins n lorem sentences.
func (r *Rand) sentences(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = r.sentence()
	}
	return strings.Join(parts, " ")
}

// paragraphs joins n paragraphs of 3-6 sentences each.
func (r *Rand) paragraphs(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = r.sentences(r.IntBetween(3, 6))
	}
	return strings.Join(parts, "\n\n")
}

// slugify lowercases a name and strips everything but letters and digits,
// for website host names.
func slugify(name string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(name) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// streetAddress builds "N <City> St, <City>, <Country>".
func (r *Rand) streetAddress(c city) string {
	return fmt.Sprintf("%d %s St, %s, %s", r.IntBetween(1, 1000), c.Name, c.Name, c.Country)
}
