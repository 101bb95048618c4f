package content

var profile = Profile{
	Name:     "Alex Morgan",
	Role:     "Senior Marketing Manager",
	Tagline:  "Transforming Brands Through Innovative Marketing",
	Bio:      "With over a decade of experience in digital marketing, I help brands stand out in a crowded marketplace through data-driven strategies and creative execution.",
	Email:    "contact@alexmorgan.com",
	Phone:    "+1 (555) 123-4567",
	Location: "San Francisco, CA",
	Note:     "Crafting compelling marketing strategies for ambitious brands",
	Avatar:   "https://images.pexels.com/photos/2381069/pexels-photo-2381069.jpeg?auto=compress&cs=tinysrgb&w=600",
}

var projects = []Project{
	{
		ID:          "rebranding",
		Title:       "Corporate Rebranding",
		Category:    "Branding",
		Description: "Led a comprehensive rebranding campaign for a major tech company, resulting in a modernized visual identity and increased brand recognition.",
		Challenge:   "Outdated brand image and low market visibility.",
		Solution:    "Developed a new brand strategy, visual identity, and marketing collateral.",
		Results:     "40% increase in brand recognition, 25% boost in customer engagement.",
		Client:      "Confidential",
		Year:        2023,
		Accent:      "#8B5CF6",
		Images: []string{
			"https://images.unsplash.com/photo-1517048676732-d65bc937f952?w=500&h=500&fit=crop",
			"https://plus.unsplash.com/premium_photo-1689977968861-9c91dbb16049?w=500&h=500&fit=crop",
		},
	},
	{
		ID:          "digital",
		Title:       "Digital Transformation",
		Category:    "Strategy",
		Description: "Spearheaded a digital transformation initiative that modernized marketing processes and improved customer experience.",
		Challenge:   "Legacy systems and manual processes hindering efficiency.",
		Solution:    "Implemented AI-powered analytics, marketing automation, and CRM integration.",
		Results:     "50% reduction in campaign execution time, 30% increase in conversion rates.",
		Client:      "Confidential",
		Year:        2023,
		Accent:      "#E74C3C",
		Images: []string{
			"https://images.unsplash.com/photo-1519389950473-47ba0277781c?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1542744174-7c97c32b00b4?q=80&w=2047&auto=format&fit=crop",
		},
	},
	{
		ID:          "content",
		Title:       "Content Marketing",
		Category:    "Campaign",
		Description: "Developed and executed a content marketing strategy that positioned the brand as a thought leader in the industry.",
		Challenge:   "Low brand authority and limited content reach.",
		Solution:    "Created high-quality, data-driven content and implemented a multi-channel distribution strategy.",
		Results:     "200% increase in organic traffic, 150% growth in social media following.",
		Client:      "Confidential",
		Year:        2023,
		Accent:      "#2ECC71",
		Images: []string{
			"https://images.unsplash.com/photo-1552664730-d307ca884978?w=500&h=500&fit=crop",
			"https://images.unsplash.com/photo-1542744174-7c97c32b00b4?q=80&w=2047&auto=format&fit=crop",
		},
	},
	{
		ID:          "social",
		Title:       "Social Media Revamp",
		Category:    "Digital",
		Description: "Transformed the brand's social media presence through a comprehensive strategy and content overhaul.",
		Challenge:   "Stale content and low engagement on social platforms.",
		Solution:    "Developed a social media strategy, created engaging content, and implemented community management practices.",
		Results:     "300% increase in engagement, 120% growth in followers within 6 months.",
		Client:      "Confidential",
		Year:        2023,
		Accent:      "#F39C12",
		Images: []string{
			"https://images.unsplash.com/photo-1611162617213-7d7a39e9b1d7?w=500&h=500&fit=crop",
			"https://images.unsplash.com/photo-1597226012661-ee865b212f51?w=500&h=500&fit=crop",
		},
	},
}

var achievements = []Achievement{
	{
		ID:          1,
		Title:       "Award-Winning Campaign",
		Description: "Created a viral marketing campaign that won the prestigious Golden Lion at Cannes Lions International Festival.",
		Icon:        "🏆",
		Year:        2023,
	},
	{
		ID:          2,
		Title:       "Record-Breaking Engagement",
		Description: "Developed a social media strategy that achieved the highest engagement rate in the company's history.",
		Icon:        "📈",
		Year:        2022,
	},
	{
		ID:          3,
		Title:       "Revenue Growth",
		Description: "Led a team that created marketing campaigns resulting in a 35% increase in annual revenue.",
		Icon:        "💰",
		Year:        2021,
	},
	{
		ID:          4,
		Title:       "Digital Innovation",
		Description: "Pioneered the use of AI-powered analytics in marketing, improving campaign ROI by 28%.",
		Icon:        "🤖",
		Year:        2020,
	},
}

var skills = []Skill{
	{
		ID:          1,
		Name:        "Digital Marketing",
		Expertise:   95,
		Description: "Strategy, execution, and analysis of digital marketing campaigns.",
	},
	{
		ID:          2,
		Name:        "Brand Development",
		Expertise:   90,
		Description: "Creating and evolving brand identities across various industries.",
	},
	{
		ID:          3,
		Name:        "Content Creation",
		Expertise:   85,
		Description: "Developing compelling content across multiple formats and channels.",
	},
	{
		ID:          4,
		Name:        "Marketing Technology",
		Expertise:   80,
		Description: "Implementing and optimizing marketing tools and platforms.",
	},
	{
		ID:          5,
		Name:        "Data Analysis",
		Expertise:   75,
		Description: "Interpreting data to inform marketing strategies and measure performance.",
	},
}

var socialLinks = []SocialLink{
	{Name: "GitHub", URL: "https://github.com/alexmorgan"},
	{Name: "LinkedIn", URL: "https://linkedin.com/in/alexmorgan"},
	{Name: "Twitter", URL: "https://twitter.com/alexmorgan"},
	{Name: "Instagram", URL: "https://instagram.com/alexmorgan"},
}
