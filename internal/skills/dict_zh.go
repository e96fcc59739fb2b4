package skills

// chineseTerms is the Chinese skill dictionary, shared by zh-cn and zh-tw.
var chineseTerms = []string{
	// Programming languages (same as English)
	"python", "javascript", "typescript", "java", "c++", "c#", "c", "ruby", "go", "rust", "php", "swift", "kotlin", "scala",

	// Chinese terms for programming
	"编程", "程序设计", "开发", "开发者", "程序员", "软件开发", "代码", "编码",

	// Frontend
	"前端开发", "网页开发", "网页设计", "用户界面", "用户体验", "响应式设计",

	// Backend
	"后端开发", "服务器", "数据库", "接口开发", "微服务",

	// Data & ML
	"机器学习", "深度学习", "人工智能", "数据科学", "数据分析", "数据挖掘", "大数据", "自然语言处理", "计算机视觉", "神经网络", "算法",

	// Cloud & DevOps
	"云计算", "容器化", "容器编排", "基础设施", "持续部署", "持续集成", "自动化运维", "运维",

	// Databases
	"关系型数据库", "非关系型数据库", "数据存储", "查询优化",

	// Soft skills
	"领导力", "沟通能力", "团队合作", "问题解决", "批判性思维", "项目管理", "敏捷开发", "需求分析",

	// Roles
	"软件工程师", "高级开发工程师", "初级开发工程师", "架构师", "技术负责人", "项目经理", "产品经理", "测试工程师", "运维工程师",

	// Tools & practices
	"版本控制", "单元测试", "自动化测试", "代码审查", "技术文档", "系统维护", "技术支持", "调试",

	// Security
	"信息安全", "网络安全", "身份认证", "授权", "加密", "防火墙", "安全审计",

	// Other
	"操作系统", "网络", "通信", "硬件", "软件", "移动应用", "网页应用", "性能优化", "可扩展性", "可维护性", "分布式系统", "高并发", "负载均衡",
}
