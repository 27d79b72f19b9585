package main

// DefaultContent returns the site owner's content. Edit this to update the site.
func DefaultContent() ContentDocument {
	return ContentDocument{
		Profile: Profile{
			Name:  "Hamed Sahebi",
			Title: "Software & Data Engineer",
			Blurb: "I build real‑time data systems, microservices, and ML‑backed products. " +
				"5+ years in Norway delivering drilling analytics, GenAI services, and full‑stack apps.",
			Location:     "Stavanger, Norway",
			Email:        "hs.hamedsahebi@gmail.com",
			Availability: "Available for freelance",
			Socials: map[string]string{
				"github":   "https://github.com/hamedsahebi",
				"linkedin": "https://www.linkedin.com/in/hamed-sahebi-2439b249/",
			},
			Skills: []string{
				"Node.js", "TypeScript", "Python", "React", "Express", "Flask", "PostgreSQL",
				"MongoDB", "Vector DB", "LangChain", "OpenAI API", "Microservices", "Docker",
				"Kubernetes", "Cloud deployment", "Time-series", "Real-time data", "Pandas",
				"NumPy", "scikit-learn", "Keras",
			},
			CVPath: "/my_cv.pdf",
		},
		Offerings: []Offering{
			{
				Icon:  IconRocket,
				Title: "Data platforms & pipelines",
				Text:  "Design event‑driven ETL/ELT, lakehouse architectures, and analytics that scale.",
			},
			{
				Icon:  IconStar,
				Title: "Backend systems",
				Text:  "APIs, services, and infra with strong observability and SLOs.",
			},
			{
				Icon:  IconCalendar,
				Title: "Advisory",
				Text:  "Tech strategy, hiring, and roadmaps. Fractional data/engineering leadership.",
			},
		},
		About: AboutCopy{
			Heading: "About",
			Paragraphs: []string{
				"I help teams turn data into leverage and get software shipped. " +
					"Comfortable as an IC or advisor; pragmatic, quality‑minded, and business‑focused.",
				"Most of my work sits where field data meets product: streaming sensor data in, " +
					"models and services in the middle, and tools people actually use on the other end.",
			},
			HighlightsHeading: "Highlights",
			Highlights: []string{
				"5+ years professional experience",
				"Security‑minded, GDPR‑aware",
				"English & Norwegian (working proficiency)",
			},
		},
		ProjectsCopy: ProjectsCopy{
			Heading:    "Selected Projects",
			ViewAllURL: "#",
		},
		Projects: []Project{
			{
				Title: "Real‑time Drilling Data Platform (Equinor‑funded)",
				Description: "Designed and shipped a real‑time data acquisition, prediction, and optimization system. " +
					"Full lifecycle: architecture → deployment (Node.js, TypeScript, Python). " +
					"Microservices with Docker; data in PostgreSQL & MongoDB; front end in React.",
				Tags: []string{"Node.js", "TypeScript", "Python", "Microservices", "PostgreSQL", "MongoDB", "Docker", "React"},
				Link: "#",
			},
			{
				Title: "GenAI Knowledge & Agents for AI‑drill",
				Description: "Built document QA with vector DB + LangChain + OpenAI and custom AI agents " +
					"to interact with internal software workflows.",
				Tags: []string{"LangChain", "OpenAI", "Vector DB"},
				Link: "#",
			},
			{
				Title: "Operational Data & Well‑planning Apps",
				Description: "Two production web apps for operational data management, visualization, " +
					"and planning, including REST APIs and cloud deployment.",
				Tags: []string{"React", "Express", "Flask", "PostgreSQL", "InfluxDB", "Heroku"},
				Link: "#",
			},
			{
				Title: "Movie DB – Full‑stack Sample",
				Description: "Practice project demonstrating API + UI: Node/Express backend and React " +
					"front end with clean components and routing.",
				Tags: []string{"Node.js", "Express", "React"},
				Link: "https://github.com/hamedsahebi/movie-db",
			},
		},
		Achievements: []Achievement{
			{
				Title: "Contributed to securing 5M NOK Commercialization grant (Research Council)",
				Date:  "2024–2026",
				Icon:  IconRocket,
			},
			{
				Title: "Contributed to securing 500K NOK Qualification grant (Research Council)",
				Date:  "2022–2023",
				Icon:  IconAward,
			},
			{
				Title: "Journal article in Geoenergy Science & Engineering (vol. 223)",
				Date:  "2023",
				Icon:  IconAward,
			},
			{
				Title: "Speaker – SPE Norway Subsurface Conference (Bergen)",
				Date:  "2022",
				Icon:  IconAward,
			},
		},
		Testimonials: []Testimonial{
			{
				Quote: "Hamed delivered beyond expectations. His work on our data platform reduced " +
					"turnaround time significantly and improved system reliability.",
				Author: "CTO, University of Stavanger Project",
			},
			{
				Quote: "Strong technical contributor with clear communication. Helped secure major " +
					"research funding thanks to his engineering input.",
				Author: "Research Council Norway",
			},
		},
		Contact: ContactCopy{
			Heading: "Let’s work together",
			Invitation: "Tell me about your project scope, timeline, and goals. I typically work on a " +
				"project or retainer basis and respond within one business day.",
			EngagementsHeading: "Typical engagements",
			Engagements: []string{
				"Data platform/ETL bootstraps",
				"Backend/API delivery",
				"Observability & reliability uplift",
				"Advisory & fractional leadership",
			},
		},
	}
}
