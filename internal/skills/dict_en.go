package skills

// englishTerms is the default dictionary. It doubles as the fallback for
// language codes without a dedicated table.
var englishTerms = []string{
	// Programming languages
	"python", "javascript", "typescript", "java", "c++", "c#", "c", "ruby", "go", "golang", "rust", "php", "swift", "kotlin", "scala", "perl", "r", "matlab", "lua", "dart", "objective-c", "shell", "bash", "powershell",

	// Frontend
	"react", "reactjs", "react.js", "angular", "angularjs", "vue", "vuejs", "vue.js", "svelte", "next.js", "nextjs", "nuxt", "gatsby", "html", "html5", "css", "css3", "sass", "scss", "less", "tailwind", "tailwindcss", "bootstrap", "material-ui", "mui", "chakra", "styled-components", "webpack", "vite", "babel", "jquery",

	// Backend
	"node.js", "nodejs", "node", "express", "expressjs", "fastapi", "django", "flask", "spring", "spring boot", "springboot", "nestjs", "rails", "ruby on rails", "laravel", "asp.net", ".net", "dotnet", "gin", "fiber", "fastify", "koa",

	// Databases
	"sql", "postgresql", "postgres", "mysql", "mariadb", "mongodb", "mongo", "redis", "elasticsearch", "elastic", "dynamodb", "sqlite", "oracle", "cassandra", "couchdb", "neo4j", "graphql", "prisma", "sequelize", "typeorm", "mongoose",

	// Cloud & DevOps
	"aws", "amazon web services", "gcp", "google cloud", "azure", "microsoft azure", "docker", "kubernetes", "k8s", "terraform", "ansible", "puppet", "chef", "ci/cd", "cicd", "jenkins", "github actions", "gitlab ci", "circleci", "travis", "heroku", "vercel", "netlify", "digitalocean", "linode", "cloudflare",

	// Data & ML
	"machine learning", "ml", "deep learning", "dl", "artificial intelligence", "ai", "tensorflow", "pytorch", "keras", "pandas", "numpy", "scikit-learn", "sklearn", "opencv", "nlp", "natural language processing", "computer vision", "data science", "data analysis", "data engineering", "spark", "hadoop", "airflow", "kafka", "databricks",

	// Tools & practices
	"git", "github", "gitlab", "bitbucket", "jira", "confluence", "agile", "scrum", "kanban", "rest", "rest api", "restful", "api", "apis", "microservices", "monorepo", "tdd", "testing", "unit testing", "jest", "mocha", "pytest", "selenium", "cypress", "playwright",

	// Mobile
	"ios", "android", "react native", "flutter", "xamarin", "ionic", "mobile", "app development",

	// Soft skills & roles
	"leadership", "communication", "teamwork", "problem solving", "critical thinking", "project management", "team lead", "tech lead", "software architect", "senior developer", "full stack developer", "backend developer", "frontend developer",

	// Other
	"linux", "unix", "windows", "macos", "devops", "sre", "backend", "frontend", "full stack", "fullstack", "software engineer", "developer", "programming", "coding", "api design", "system design", "architecture", "security", "cybersecurity", "networking", "tcp/ip", "http", "https", "websocket", "oauth", "jwt", "authentication", "authorization",
}
