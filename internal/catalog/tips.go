package catalog

import "resumelens/internal/types"

// interviewGuide holds the preparation material for one role
type interviewGuide struct {
	Tips      []string
	Questions []string
}

var interviewGuides = map[string]interviewGuide{
	"software_engineer": {
		Tips: []string{
			"Practice coding problems on platforms like LeetCode, HackerRank, or CodeSignal",
			"Review data structures (arrays, linked lists, trees, graphs) and algorithms (sorting, searching, dynamic programming)",
			"Prepare to explain your past projects in detail - challenges faced, solutions implemented, and impact",
			"Be ready to discuss system design concepts for senior positions",
			"Understand time and space complexity (Big O notation)",
			"Practice whiteboard coding or live coding in your preferred language",
			"Research the company's tech stack and products before the interview",
			"Prepare questions to ask the interviewer about team culture, development processes, and growth opportunities",
		},
		Questions: []string{
			"Explain the difference between object-oriented and functional programming",
			"What are the main principles of OOP? Explain with examples",
			"How do you optimize the performance of a slow application?",
			"Explain the concept of RESTful APIs and HTTP methods",
			"What is the difference between SQL and NoSQL databases?",
			"Describe a challenging bug you encountered and how you fixed it",
			"How do you handle version control conflicts in Git?",
			"Explain dependency injection and its benefits",
			"What are design patterns? Name a few you have used",
			"How would you reverse a linked list? Optimize for time complexity",
		},
	},
	"data_analyst": {
		Tips: []string{
			"Be proficient in SQL - practice complex queries, joins, subqueries, and window functions",
			"Know your data visualization tools (Tableau, Power BI, Excel) inside out",
			"Understand statistical concepts: mean, median, mode, standard deviation, hypothesis testing",
			"Be prepared to discuss A/B testing and experimental design",
			"Practice explaining technical findings to non-technical stakeholders",
			"Prepare case studies where you derived actionable insights from data",
			"Review common metrics for the industry (e.g., CAC, LTV, churn rate for SaaS)",
			"Be ready to walk through your data analysis process from start to finish",
		},
		Questions: []string{
			"Explain the difference between INNER JOIN, LEFT JOIN, and RIGHT JOIN",
			"How would you handle missing data in a dataset?",
			"What is the difference between correlation and causation?",
			"Describe your process for cleaning and preparing data for analysis",
			"How do you validate the results of your analysis?",
			"Explain p-value and statistical significance",
			"Walk me through an A/B test you designed and analyzed",
			"How would you detect outliers in a dataset?",
			"What metrics would you track for [specific business scenario]?",
			"Explain a time when your analysis led to a business decision",
		},
	},
	"web_developer": {
		Tips: []string{
			"Build a strong portfolio with 3-5 impressive projects showcasing different skills",
			"Understand responsive design principles and mobile-first development",
			"Know the fundamentals: HTML5 semantic tags, CSS Grid/Flexbox, JavaScript ES6+",
			"Be proficient in at least one modern framework (React, Vue, or Angular)",
			"Understand browser APIs, async programming (Promises, async/await)",
			"Know website performance optimization techniques (lazy loading, code splitting, caching)",
			"Practice live coding challenges - build a component or feature from scratch",
			"Understand web accessibility (WCAG) and SEO best practices",
		},
		Questions: []string{
			"Explain the box model in CSS",
			"What is the difference between var, let, and const in JavaScript?",
			"How does the event loop work in JavaScript?",
			"Explain the Virtual DOM and how React uses it",
			"What are CSS preprocessors? Have you used Sass or Less?",
			"How do you ensure your website is accessible?",
			"Explain Cross-Origin Resource Sharing (CORS)",
			"What is the difference between localStorage and sessionStorage?",
			"How would you optimize website loading time?",
			"Describe the lifecycle methods in React or your framework of choice",
		},
	},
	"ml_engineer": {
		Tips: []string{
			"Understand the full ML pipeline: data collection, preprocessing, modeling, evaluation, deployment",
			"Be strong in Python and key libraries: NumPy, Pandas, Scikit-learn, TensorFlow/PyTorch",
			"Know when to use different algorithms (linear regression, decision trees, neural networks, etc.)",
			"Understand evaluation metrics: accuracy, precision, recall, F1-score, AUC-ROC",
			"Be prepared to discuss bias-variance tradeoff, overfitting, and regularization",
			"Have projects demonstrating end-to-end ML solutions (from data to deployment)",
			"Understand MLOps basics: model versioning, monitoring, CI/CD for ML",
			"Review recent ML papers or trends relevant to the company's domain",
		},
		Questions: []string{
			"Explain the bias-variance tradeoff",
			"What is overfitting and how do you prevent it?",
			"Describe the difference between supervised and unsupervised learning",
			"How would you handle imbalanced datasets?",
			"Explain gradient descent and its variants (SGD, Adam, etc.)",
			"What is the difference between precision and recall?",
			"How do you select features for a machine learning model?",
			"Explain how neural networks learn through backpropagation",
			"What is regularization? Explain L1 vs L2 regularization",
			"Describe a machine learning project you built from scratch",
		},
	},
	"devops_engineer": {
		Tips: []string{
			"Master containerization with Docker and orchestration with Kubernetes",
			"Understand CI/CD pipelines and tools (Jenkins, GitLab CI, GitHub Actions)",
			"Be proficient in at least one cloud platform (AWS, Azure, or GCP)",
			"Know Infrastructure as Code tools like Terraform, Ansible, or CloudFormation",
			"Understand monitoring and logging (Prometheus, Grafana, ELK stack)",
			"Be comfortable with Linux/Unix systems and shell scripting",
			"Know networking basics: DNS, load balancers, proxies, firewalls",
			"Prepare examples of infrastructure optimization or incident resolution",
		},
		Questions: []string{
			"Explain the difference between containers and virtual machines",
			"How does Kubernetes orchestrate containers?",
			"Describe a CI/CD pipeline you have implemented",
			"What is Infrastructure as Code and why is it important?",
			"How would you handle a production outage?",
			"Explain blue-green deployment vs canary deployment",
			"What monitoring tools have you used and how do you set up alerts?",
			"How do you ensure security in a DevOps environment?",
			"Explain the concept of immutable infrastructure",
			"Describe how you would scale an application to handle increased traffic",
		},
	},
}

// InterviewGuide returns preparation tips and common questions for a role.
// Unknown role ids fall back to the default role.
func InterviewGuide(roleID string) types.InterviewGuide {
	guide, ok := interviewGuides[roleID]
	if !ok {
		roleID = DefaultRoleID
		guide = interviewGuides[roleID]
	}
	profile := roleProfiles[roleID]
	return types.InterviewGuide{
		Role:      roleID,
		Title:     profile.Title,
		Tips:      append([]string(nil), guide.Tips...),
		Questions: append([]string(nil), guide.Questions...),
	}
}
