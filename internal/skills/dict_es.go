package skills

// spanishTerms is the Spanish skill dictionary.
var spanishTerms = []string{
	// Programming languages (same as English)
	"python", "javascript", "typescript", "java", "c++", "c#", "c", "ruby", "go", "rust", "php", "swift", "kotlin", "scala",

	// Spanish terms for programming
	"programación", "desarrollo", "desarrollador", "programador", "código", "codificación",

	// Frontend
	"desarrollo web", "diseño web", "interfaz de usuario", "experiencia de usuario", "ux", "ui",

	// Backend
	"servidor", "base de datos", "backend", "frontend", "api rest", "servicios web",

	// Data & ML
	"aprendizaje automático", "aprendizaje profundo", "inteligencia artificial", "ciencia de datos", "análisis de datos", "minería de datos", "big data", "procesamiento de lenguaje natural", "visión por computadora", "redes neuronales",

	// Cloud & DevOps
	"nube", "computación en la nube", "contenedores", "orquestación", "infraestructura", "despliegue continuo", "integración continua",

	// Databases
	"bases de datos", "sql", "nosql", "almacenamiento", "consultas",

	// Soft skills
	"liderazgo", "comunicación", "trabajo en equipo", "resolución de problemas", "pensamiento crítico", "gestión de proyectos", "metodologías ágiles", "scrum master",

	// Roles
	"ingeniero de software", "desarrollador senior", "desarrollador junior", "arquitecto de software", "líder técnico", "jefe de proyecto", "analista", "consultor", "freelance",

	// Tools & practices
	"control de versiones", "pruebas unitarias", "pruebas automatizadas", "documentación", "mantenimiento", "soporte técnico", "debugging", "depuración",

	// Security
	"seguridad informática", "ciberseguridad", "autenticación", "autorización", "encriptación", "firewall",

	// Other
	"sistemas operativos", "redes", "telecomunicaciones", "hardware", "software", "aplicaciones móviles", "aplicaciones web", "responsive", "optimización", "rendimiento", "escalabilidad",
}
