package extract

import (
	"regexp"
	"strings"
)

// skillsVocabulary is the controlled vocabulary of detectable skills. Entries
// are stored in their canonical display casing; matching is case-insensitive
// with word boundaries on both sides so "Java" never matches inside
// "JavaScript".
var skillsVocabulary = []string{
	// Programming languages
	"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Go", "Rust",
	"PHP", "Ruby", "Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl",
	"Objective-C", "Dart", "Lua", "Haskell", "Elixir", "Clojure",

	// Web frameworks and libraries
	"Django", "FastAPI", "Flask", "React", "Vue", "Angular", "Next.js",
	"Express", "Node.js", "Spring", "Laravel", "Rails", "ASP.NET",
	"Svelte", "Nuxt.js", "Gatsby", "Redux", "MobX", "jQuery",
	"Bootstrap", "Tailwind CSS", "Material UI", "Chakra UI",

	// Mobile development
	"React Native", "Flutter", "SwiftUI", "Android SDK", "iOS",
	"Xamarin", "Ionic", "Cordova",

	// Databases
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite", "Oracle",
	"Cassandra", "DynamoDB", "Elasticsearch", "MariaDB", "CouchDB",
	"Neo4j", "Firebase", "Supabase", "Prisma", "SQLAlchemy",

	// Cloud and DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
	"Jenkins", "GitLab CI", "GitHub Actions", "Ansible", "Chef", "Puppet",
	"CircleCI", "Travis CI", "ArgoCD", "Helm", "Prometheus", "Grafana",
	"Nginx", "Apache", "Serverless", "Lambda", "EC2", "S3",

	// Data, ML and AI
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy",
	"Spark", "Hadoop", "Kafka", "Airflow", "Keras", "OpenCV",
	"NLTK", "spaCy", "Hugging Face", "LangChain", "OpenAI",
	"Machine Learning", "Deep Learning", "NLP", "Computer Vision",
	"Data Science", "Data Analysis", "Data Engineering",

	// Testing and QA
	"Jest", "Mocha", "Pytest", "JUnit", "Selenium", "Cypress",
	"Playwright", "Unit Testing", "Integration Testing", "E2E Testing",
	"TDD", "BDD",

	// Other technologies
	"Git", "Linux", "REST API", "GraphQL", "Microservices", "Agile",
	"Scrum", "CI/CD", "HTML", "CSS", "Sass", "LESS",
	"WebSocket", "gRPC", "RabbitMQ", "WebRTC", "OAuth", "JWT",
	"API Design", "System Design", "Software Architecture",

	// Soft skills sometimes listed explicitly
	"Leadership", "Team Management", "Communication", "Problem Solving",
	"Project Management", "Technical Writing",
}

// skillPattern pairs a canonical vocabulary term with its compiled
// word-boundary matcher.
type skillPattern struct {
	canonical string
	pattern   *regexp.Regexp
}

// skillPatterns is built once at process start and read-only afterwards.
var skillPatterns = compileSkillPatterns()

func compileSkillPatterns() []skillPattern {
	patterns := make([]skillPattern, 0, len(skillsVocabulary))
	for _, skill := range skillsVocabulary {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
		patterns = append(patterns, skillPattern{canonical: skill, pattern: re})
	}
	return patterns
}

// VocabularySize returns the number of terms in the skills vocabulary.
func VocabularySize() int {
	return len(skillsVocabulary)
}
