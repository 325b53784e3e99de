package bank

// catalogue is the static question bank for a full-stack developer
// interview, grouped by tier. Reference answers feed the keyword
// matcher in the scoring engine.
var catalogue = map[Tier][]Question{
	TierEasy: {
		{
			ID:              1,
			Text:            "What is the difference between let, const, and var in JavaScript?",
			Tier:            TierEasy,
			ReferenceAnswer: "var is function-scoped, let and const are block-scoped. const cannot be reassigned.",
			Category:        "JavaScript Fundamentals",
		},
		{
			ID:              2,
			Text:            "Explain what React components are and the difference between functional and class components.",
			Tier:            TierEasy,
			ReferenceAnswer: "Components are reusable UI elements. Functional components use hooks, class components use lifecycle methods.",
			Category:        "React Basics",
		},
		{
			ID:              3,
			Text:            "What is the purpose of package.json in a Node.js project?",
			Tier:            TierEasy,
			ReferenceAnswer: "package.json contains project metadata, dependencies, scripts, and configuration.",
			Category:        "Node.js Basics",
		},
		{
			ID:              4,
			Text:            "What does the CSS box model describe?",
			Tier:            TierEasy,
			ReferenceAnswer: "Every element is a rectangular box made of content, padding, border, and margin layers.",
			Category:        "CSS Fundamentals",
		},
		{
			ID:              5,
			Text:            "What is the difference between == and === in JavaScript?",
			Tier:            TierEasy,
			ReferenceAnswer: "Double equals performs type coercion before comparing, triple equals compares value and type strictly.",
			Category:        "JavaScript Fundamentals",
		},
		{
			ID:              6,
			Text:            "What is an HTTP status code? Give examples of a success and an error code.",
			Tier:            TierEasy,
			ReferenceAnswer: "Status codes communicate request outcomes. 200 means success, 404 means resource not found, 500 means server error.",
			Category:        "Web Fundamentals",
		},
	},
	TierMedium: {
		{
			ID:              101,
			Text:            "Explain the concept of closures in JavaScript with an example.",
			Tier:            TierMedium,
			ReferenceAnswer: "Closures allow inner functions to access outer function variables even after outer function returns.",
			Category:        "JavaScript Advanced",
		},
		{
			ID:              102,
			Text:            "How does React's virtual DOM work and what are its benefits?",
			Tier:            TierMedium,
			ReferenceAnswer: "Virtual DOM is a JavaScript representation of real DOM. It enables efficient updates through diffing algorithm.",
			Category:        "React Advanced",
		},
		{
			ID:              103,
			Text:            "What are middleware functions in Express.js and how do you use them?",
			Tier:            TierMedium,
			ReferenceAnswer: "Middleware functions execute during request-response cycle. They can modify req/res objects or end the cycle.",
			Category:        "Node.js/Express",
		},
		{
			ID:              104,
			Text:            "Compare REST and GraphQL APIs. When would you choose one over the other?",
			Tier:            TierMedium,
			ReferenceAnswer: "REST exposes fixed resource endpoints, GraphQL exposes a typed schema letting clients request exactly the fields they need.",
			Category:        "API Design",
		},
		{
			ID:              105,
			Text:            "Explain how Promises and async/await relate in JavaScript.",
			Tier:            TierMedium,
			ReferenceAnswer: "async functions return promises, await suspends execution until the promise settles, making asynchronous code read sequentially.",
			Category:        "JavaScript Advanced",
		},
		{
			ID:              106,
			Text:            "What is database indexing and what trade-offs does it involve?",
			Tier:            TierMedium,
			ReferenceAnswer: "Indexes speed up lookups by maintaining sorted structures, at the cost of slower writes and extra storage.",
			Category:        "Databases",
		},
	},
	TierHard: {
		{
			ID:              201,
			Text:            "Implement a debounce function in JavaScript and explain when you would use it.",
			Tier:            TierHard,
			ReferenceAnswer: "Debounce delays function execution until after a specified time has passed since last invocation.",
			Category:        "JavaScript Expert",
		},
		{
			ID:              202,
			Text:            "Explain React's reconciliation algorithm and how keys help in list rendering.",
			Tier:            TierHard,
			ReferenceAnswer: "Reconciliation compares virtual DOM trees. Keys help React identify which items changed, added, or removed.",
			Category:        "React Expert",
		},
		{
			ID:              203,
			Text:            "Design a scalable REST API architecture for a social media platform. What considerations would you make?",
			Tier:            TierHard,
			ReferenceAnswer: "Consider authentication, rate limiting, caching, database design, microservices, load balancing.",
			Category:        "System Design",
		},
		{
			ID:              204,
			Text:            "How would you diagnose and fix a memory leak in a long-running Node.js service?",
			Tier:            TierHard,
			ReferenceAnswer: "Capture heap snapshots, compare retained objects over time, look for growing closures, caches, listeners, and timers that are never cleared.",
			Category:        "Node.js Expert",
		},
		{
			ID:              205,
			Text:            "Describe how you would implement optimistic UI updates with rollback in a React application.",
			Tier:            TierHard,
			ReferenceAnswer: "Apply the mutation locally before the server confirms, keep the previous state, and restore it if the request fails.",
			Category:        "React Expert",
		},
		{
			ID:              206,
			Text:            "Explain eventual consistency and how you would design a system that tolerates it.",
			Tier:            TierHard,
			ReferenceAnswer: "Replicas converge over time rather than instantly. Design with idempotent operations, conflict resolution, and read-repair.",
			Category:        "System Design",
		},
	},
}

// Catalogue returns the questions available for a tier.
// The returned slice must not be mutated.
func Catalogue(t Tier) []Question {
	return catalogue[t]
}

// Size returns the number of questions available for a tier.
func Size(t Tier) int {
	return len(catalogue[t])
}
