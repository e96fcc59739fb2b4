package skills

// germanTerms is the German skill dictionary.
var germanTerms = []string{
	// Programming languages (same as English)
	"python", "javascript", "typescript", "java", "c++", "c#", "c", "ruby", "go", "rust", "php", "swift", "kotlin", "scala",

	// German terms for programming
	"programmierung", "entwicklung", "entwickler", "programmierer", "softwareentwicklung", "webentwicklung",

	// Frontend
	"webdesign", "benutzeroberfläche", "benutzererfahrung",

	// Backend
	"server", "datenbank", "backend-entwicklung", "webdienste",

	// Data & ML
	"maschinelles lernen", "deep learning", "künstliche intelligenz", "ki", "datenwissenschaft", "datenanalyse", "data mining", "verarbeitung natürlicher sprache", "computer vision", "neuronale netze",

	// Cloud & DevOps
	"cloud computing", "container", "orchestrierung", "infrastruktur", "kontinuierliche bereitstellung", "kontinuierliche integration",

	// Databases
	"datenbanken", "datenspeicherung", "abfragen",

	// Soft skills
	"führung", "führungskompetenz", "kommunikation", "teamarbeit", "problemlösung", "kritisches denken", "projektmanagement", "agile methoden",

	// Roles
	"softwareentwickler", "senior-entwickler", "junior-entwickler", "softwarearchitekt", "technischer leiter", "projektleiter", "analyst", "berater",

	// Tools & practices
	"versionskontrolle", "unit-tests", "automatisierte tests", "dokumentation", "wartung", "technischer support", "debugging", "fehlersuche",

	// Security
	"informationssicherheit", "cybersicherheit", "authentifizierung", "autorisierung", "verschlüsselung", "firewall",

	// Other
	"betriebssysteme", "netzwerke", "telekommunikation", "hardware", "software", "mobile anwendungen", "webanwendungen", "optimierung", "leistung", "skalierbarkeit", "wartbarkeit",
}
