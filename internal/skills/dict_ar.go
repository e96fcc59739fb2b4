package skills

// arabicTerms is the Arabic skill dictionary.
var arabicTerms = []string{
	// Programming languages (same as English)
	"python", "javascript", "typescript", "java", "c++", "c#", "c", "ruby", "go", "rust", "php", "swift", "kotlin", "scala",

	// Arabic terms for programming
	"برمجة", "تطوير", "مطور", "مبرمج", "تطوير البرمجيات", "كود",

	// Frontend
	"تطوير الويب", "تصميم الويب", "واجهة المستخدم", "تجربة المستخدم",

	// Backend
	"خادم", "قاعدة بيانات", "خدمات الويب", "الواجهة الخلفية",

	// Data & ML
	"تعلم الآلة", "التعلم العميق", "الذكاء الاصطناعي", "علم البيانات", "تحليل البيانات", "التنقيب في البيانات", "معالجة اللغة الطبيعية", "رؤية الحاسوب", "الشبكات العصبية",

	// Cloud & DevOps
	"الحوسبة السحابية", "الحاويات", "البنية التحتية", "النشر المستمر", "التكامل المستمر",

	// Databases
	"قواعد البيانات", "تخزين البيانات", "استعلامات",

	// Soft skills
	"القيادة", "التواصل", "العمل الجماعي", "حل المشكلات", "التفكير النقدي", "إدارة المشاريع", "المنهجيات الرشيقة",

	// Roles
	"مهندس برمجيات", "مطور أول", "مطور مبتدئ", "مهندس معماري للبرمجيات", "قائد تقني", "مدير مشروع", "محلل", "مستشار",

	// Tools & practices
	"التحكم في الإصدارات", "اختبارات الوحدة", "الاختبارات الآلية", "التوثيق", "الصيانة", "الدعم الفني", "تصحيح الأخطاء",

	// Security
	"أمن المعلومات", "الأمن السيبراني", "المصادقة", "التفويض", "التشفير", "جدار الحماية",

	// Other
	"أنظمة التشغيل", "الشبكات", "الاتصالات", "العتاد", "البرمجيات", "تطبيقات الجوال", "تطبيقات الويب", "التحسين", "الأداء", "قابلية التوسع",
}
