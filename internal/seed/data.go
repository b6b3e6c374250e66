package seed

import "github.com/cuongbtq/jobboard/internal/api/domain"

type accountSeed struct {
	name     string
	email    string
	password string
	role     domain.Role
	profile  domain.Profile
}

type jobSeed struct {
	employerEmail string
	title         string
	description   string
	company       string
	location      string
	salary        string
	jobType       domain.JobType
	requirements  []string
}

type applicationSeed struct {
	jobTitle       string
	applicantEmail string
	status         domain.ApplicationStatus
	coverLetter    string
}

var accounts = []accountSeed{
	{
		name: "Admin User", email: "admin@test.com", password: "admin123", role: domain.RoleAdmin,
		profile: domain.Profile{Phone: "+1-555-0100", Address: "123 Admin Street, Admin City"},
	},
	{
		name: "John Doe", email: "jobseeker@test.com", password: "password123", role: domain.RoleJobSeeker,
		profile: domain.Profile{
			Phone:      "+1-555-0101",
			Address:    "456 Job Seeker Ave, City",
			Skills:     []string{"JavaScript", "React", "Node.js", "MongoDB"},
			Experience: "3 years of web development experience",
		},
	},
	{
		name: "Sarah Smith", email: "sarah@test.com", password: "password123", role: domain.RoleJobSeeker,
		profile: domain.Profile{
			Phone:      "+1-555-0102",
			Address:    "789 Developer Road, Tech City",
			Skills:     []string{"Python", "Django", "PostgreSQL", "AWS"},
			Experience: "5 years of backend development",
		},
	},
	{
		name: "Mike Johnson", email: "mike@test.com", password: "password123", role: domain.RoleJobSeeker,
		profile: domain.Profile{
			Phone:      "+1-555-0103",
			Address:    "321 Designer Street, Creative City",
			Skills:     []string{"UI/UX Design", "Figma", "Adobe XD", "CSS"},
			Experience: "4 years of design experience",
		},
	},
	{
		name: "Jane Employer", email: "employer@test.com", password: "password123", role: domain.RoleEmployer,
		profile: domain.Profile{Phone: "+1-555-0200", Address: "100 Business Blvd, Corporate City"},
	},
	{
		name: "Tech Corp HR", email: "techcorp@test.com", password: "password123", role: domain.RoleEmployer,
		profile: domain.Profile{Phone: "+1-555-0201", Address: "200 Tech Park, Silicon Valley"},
	},
	{
		name: "Innovation Labs", email: "innovation@test.com", password: "password123", role: domain.RoleEmployer,
		profile: domain.Profile{Phone: "+1-555-0202", Address: "300 Innovation Drive, Startup City"},
	},
}

var jobs = []jobSeed{
	{
		employerEmail: "employer@test.com",
		title:         "Senior Full Stack Developer",
		description:   "Build and maintain our web applications end to end with a small product team.",
		company:       "Tech Corp",
		location:      "New York, NY",
		salary:        "$80,000 - $120,000",
		jobType:       domain.JobTypeFullTime,
		requirements: []string{
			"5+ years of experience in web development",
			"Proficiency in JavaScript, React, and Node.js",
			"Strong understanding of RESTful APIs",
		},
	},
	{
		employerEmail: "employer@test.com",
		title:         "Junior Frontend Developer",
		description:   "Work alongside senior developers on responsive user interfaces, with mentorship included.",
		company:       "Tech Corp",
		location:      "Remote",
		salary:        "$50,000 - $70,000",
		jobType:       domain.JobTypeFullTime,
		requirements: []string{
			"Knowledge of HTML, CSS, and JavaScript",
			"Familiarity with React or Vue.js",
		},
	},
	{
		employerEmail: "innovation@test.com",
		title:         "Backend Developer (Python)",
		description:   "Design APIs and schemas for our Django and PostgreSQL services.",
		company:       "Innovation Labs",
		location:      "San Francisco, CA",
		salary:        "$90,000 - $130,000",
		jobType:       domain.JobTypeFullTime,
		requirements: []string{
			"4+ years of Python development experience",
			"Experience with PostgreSQL or MySQL",
			"Experience with AWS or cloud platforms",
		},
	},
	{
		employerEmail: "innovation@test.com",
		title:         "UI/UX Designer",
		description:   "Create wireframes, prototypes and design systems together with product managers.",
		company:       "Innovation Labs",
		location:      "Remote",
		salary:        "$60,000 - $85,000",
		jobType:       domain.JobTypePartTime,
		requirements: []string{
			"3+ years of UI/UX design experience",
			"Proficiency in Figma, Adobe XD, or Sketch",
		},
	},
	{
		employerEmail: "employer@test.com",
		title:         "DevOps Engineer",
		description:   "Own our cloud infrastructure and CI/CD pipelines on Docker, Kubernetes and AWS.",
		company:       "Tech Corp",
		location:      "Austin, TX",
		salary:        "$100,000 - $140,000",
		jobType:       domain.JobTypeFullTime,
		requirements: []string{
			"5+ years of DevOps experience",
			"Strong knowledge of Docker and Kubernetes",
		},
	},
	{
		employerEmail: "innovation@test.com",
		title:         "React Developer Intern",
		description:   "Paid summer internship on real React projects with a path to full-time employment.",
		company:       "Innovation Labs",
		location:      "Boston, MA",
		salary:        "$25,000 - $30,000",
		jobType:       domain.JobTypeInternship,
		requirements: []string{
			"Currently pursuing a Computer Science degree",
			"Basic knowledge of React and JavaScript",
		},
	},
}

var applications = []applicationSeed{
	{
		jobTitle:       "Senior Full Stack Developer",
		applicantEmail: "jobseeker@test.com",
		status:         domain.ApplicationPending,
		coverLetter:    "Three years of JavaScript, React and Node.js work make me a good fit for this role.",
	},
	{
		jobTitle:       "Senior Full Stack Developer",
		applicantEmail: "sarah@test.com",
		status:         domain.ApplicationReviewed,
		coverLetter:    "Five years of backend development and a solid grasp of modern web stacks.",
	},
	{
		jobTitle:       "Backend Developer (Python)",
		applicantEmail: "sarah@test.com",
		status:         domain.ApplicationShortlisted,
		coverLetter:    "My Python and Django experience lines up closely with your requirements.",
	},
	{
		jobTitle:       "UI/UX Designer",
		applicantEmail: "mike@test.com",
		status:         domain.ApplicationPending,
		coverLetter:    "Four years designing intuitive user experiences, portfolio available on request.",
	},
	{
		jobTitle:       "Junior Frontend Developer",
		applicantEmail: "jobseeker@test.com",
		status:         domain.ApplicationPending,
		coverLetter:    "Eager to grow as a frontend developer and already shipping React side projects.",
	},
}
