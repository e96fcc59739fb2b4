package skills

// frenchTerms is the French skill dictionary.
var frenchTerms = []string{
	// Programming languages (same as English)
	"python", "javascript", "typescript", "java", "c++", "c#", "c", "ruby", "go", "rust", "php", "swift", "kotlin", "scala",

	// French terms for programming
	"programmation", "développement", "développeur", "programmeur", "code", "codage",

	// Frontend
	"développement web", "conception web", "interface utilisateur", "expérience utilisateur",

	// Backend
	"serveur", "base de données", "services web", "api rest",

	// Data & ML
	"apprentissage automatique", "apprentissage profond", "intelligence artificielle", "science des données", "analyse de données", "exploration de données", "traitement du langage naturel", "vision par ordinateur", "réseaux de neurones",

	// Cloud & DevOps
	"cloud computing", "informatique en nuage", "conteneurs", "orchestration", "infrastructure", "déploiement continu", "intégration continue",

	// Databases
	"bases de données", "stockage", "requêtes",

	// Soft skills
	"leadership", "communication", "travail d'équipe", "résolution de problèmes", "pensée critique", "gestion de projet", "méthodologies agiles",

	// Roles
	"ingénieur logiciel", "développeur senior", "développeur junior", "architecte logiciel", "chef de projet", "responsable technique", "analyste", "consultant",

	// Tools & practices
	"contrôle de version", "tests unitaires", "tests automatisés", "documentation", "maintenance", "support technique", "débogage",

	// Security
	"sécurité informatique", "cybersécurité", "authentification", "autorisation", "chiffrement", "pare-feu",

	// Other
	"systèmes d'exploitation", "réseaux", "télécommunications", "matériel", "logiciel", "applications mobiles", "applications web", "optimisation", "performance", "évolutivité", "maintenabilité",
}
