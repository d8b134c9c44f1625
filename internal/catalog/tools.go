// ABOUTME: Tool tables for the four catalog sections
// ABOUTME: One entry per card; templates are fixed preambles plus the quoted input

package catalog

// ImageEditorID is the identifier of the Creative Studio image editor card.
const ImageEditorID = "imageEditor"

var creativeStudio = []Tool{
	{
		ID:          ImageEditorID,
		Section:     SectionCreativeStudio,
		Kind:        KindImageEdit,
		Title:       "Image Editor",
		Description: "Edit images with text prompts, powered by AI.",
		Placeholder: "e.g., Add a retro filter...",
	},
	{
		ID:          "videoScript",
		Section:     SectionCreativeStudio,
		Title:       "Video Script Generator",
		Description: "Generate a script for a short video based on a topic.",
		Placeholder: "e.g., The history of coffee, a tutorial on changing a tire...",
		Template: wrap("Write a short, engaging video script (approx. 1 minute) about the following topic. "+
			"Include scene descriptions and dialogue or voiceover text.", "Topic"),
	},
	{
		ID:          "musicComposer",
		Section:     SectionCreativeStudio,
		Title:       "Music Composer",
		Description: "Get ideas for a musical piece based on a mood or theme.",
		Placeholder: "e.g., A heroic battle, a peaceful morning, a cyberpunk city at night...",
		Template: wrap("Describe a musical composition that would fit the following mood or theme. "+
			"Include suggestions for instrumentation, tempo, and melody.", "Mood/Theme"),
	},
	{
		ID:          "storyWriter",
		Section:     SectionCreativeStudio,
		Title:       "Story Writer",
		Description: "Brainstorm a short story plot from a simple premise.",
		Placeholder: "e.g., A detective who can read minds, a baker who discovers a magical recipe...",
		Template: wrap("Write a short story plot outline based on the following premise. "+
			"Include a beginning, rising action, climax, and resolution.", "Premise"),
	},
	{
		ID:          "uiMockup",
		Section:     SectionCreativeStudio,
		Title:       "UI/UX Mockup Ideas",
		Description: "Describe the UI/UX for an app concept.",
		Placeholder: "e.g., A language learning app that uses AR, a social media app for gardeners...",
		Template: wrap("Provide a detailed description of the UI/UX for the following app concept. "+
			"Describe the main screens, key components, and user flow.", "App Concept"),
	},
	{
		ID:          "3dModel",
		Section:     SectionCreativeStudio,
		Title:       "3D Model Concepts",
		Description: "Generate a detailed description for a 3D model.",
		Placeholder: "e.g., A futuristic sci-fi helmet, a fantasy enchanted sword...",
		Template: wrap("Create a detailed text description for a 3D model based on the following idea. "+
			"Include details about its shape, texture, color, and key features to help a 3D artist create it.", "Model Idea"),
	},
}

var researchHub = []Tool{
	{
		ID:          "literatureReview",
		Section:     SectionResearchHub,
		Title:       "Literature Reviewer",
		Description: "Summarize key findings and gaps in literature for a topic.",
		Placeholder: "e.g., The impact of microplastics on marine life, CRISPR gene editing ethics...",
		Template: wrap("You are an AI research assistant. Provide a concise summary of the current state of research, "+
			"key findings, and notable gaps in the academic literature regarding the following topic:", "Topic"),
	},
	{
		ID:          "hypothesisGenerator",
		Section:     SectionResearchHub,
		Title:       "Hypothesis Generator",
		Description: "Generate novel, testable hypotheses from a research question.",
		Placeholder: "e.g., How does sleep deprivation affect long-term memory consolidation?",
		Template: wrap("Based on the following research question, generate three distinct, novel, and testable scientific hypotheses. "+
			"For each hypothesis, briefly describe a potential experimental approach.", "Research Question"),
	},
	{
		ID:          "dataAnalyst",
		Section:     SectionResearchHub,
		Title:       "Data Analyst",
		Description: "Suggest analysis methods for a given dataset and goal.",
		Placeholder: "e.g., Dataset: daily stock prices for 5 years. Goal: forecast next month's price trend.",
		Template: wrap("I have a dataset with the following characteristics and a specific research goal. "+
			"Suggest appropriate statistical or machine learning methods to analyze this data.", "Dataset & Goal"),
	},
	{
		ID:          "codeGenerator",
		Section:     SectionResearchHub,
		Title:       "Code Generator",
		Description: "Generate code snippets for data analysis or simulation tasks.",
		Placeholder: "e.g., A Python function to calculate the standard deviation of a list of numbers.",
		Template: wrap("Write a code snippet in Python to perform the following task. "+
			"Include comments explaining the code.", "Task"),
	},
	{
		ID:          "experimentDesigner",
		Section:     SectionResearchHub,
		Title:       "Experiment Designer",
		Description: "Outline an experimental design to test a hypothesis.",
		Placeholder: "e.g., Hypothesis: Plants exposed to classical music will grow taller than those in silence.",
		Template: wrap("Outline a basic experimental design to test the following hypothesis. "+
			"Include the independent variable, dependent variable, control group, and main steps of the procedure.", "Hypothesis"),
	},
	{
		ID:          "researchChatbot",
		Section:     SectionResearchHub,
		Title:       "Research Chatbot",
		Description: "Ask complex scientific questions and get detailed explanations.",
		Placeholder: "e.g., Explain the mechanism of mRNA vaccines.",
		Template: wrap("Provide a clear and detailed explanation for the following scientific question. "+
			"Explain it as you would to a university student.", "Question"),
	},
}

var strategyEngine = []Tool{
	{
		ID:          "marketAnalysis",
		Section:     SectionStrategyEngine,
		Title:       "Market Analyst",
		Description: "Analyze market trends, competitors, and audience for a product.",
		Placeholder: "e.g., A subscription box for eco-friendly cleaning supplies.",
		Template: wrap("You are an expert market analyst. Provide a concise market analysis for a product or service related to the following concept. "+
			"Include target audience, potential competitors, market size, and key trends.", "Concept"),
	},
	{
		ID:          "businessModelCanvas",
		Section:     SectionStrategyEngine,
		Title:       "Business Model Canvas",
		Description: "Generate a Business Model Canvas from a business idea.",
		Placeholder: "e.g., A mobile app that connects local artists with buyers.",
		Template: wrap("Based on the following business idea, generate a simple Business Model Canvas. "+
			"Fill in the key sections: Key Partners, Key Activities, Value Propositions, Customer Relationships, "+
			"Customer Segments, Key Resources, Channels, Cost Structure, and Revenue Streams.", "Business Idea"),
	},
	{
		ID:          "stakeholderMapper",
		Section:     SectionStrategyEngine,
		Title:       "Stakeholder Mapper",
		Description: "Identify key stakeholders and their interests for a project.",
		Placeholder: "e.g., Building a new public park in a residential neighborhood.",
		Template: wrap("For the following project, identify the key stakeholders. "+
			"For each stakeholder, describe their likely interests, influence, and potential impact on the project.", "Project"),
	},
	{
		ID:          "riskAssessor",
		Section:     SectionStrategyEngine,
		Title:       "Risk Assessor",
		Description: "Identify potential risks and mitigation strategies for a plan.",
		Placeholder: "e.g., Launching a new software product in a competitive market.",
		Template: wrap("Analyze the following plan and identify five potential risks. "+
			"For each risk, categorize it (e.g., financial, operational, market) and suggest a possible mitigation strategy.", "Plan"),
	},
	{
		ID:          "implementationPlanner",
		Section:     SectionStrategyEngine,
		Title:       "Implementation Planner",
		Description: "Create a high-level implementation plan with key milestones.",
		Placeholder: "e.g., Developing and launching a new e-commerce website.",
		Template: wrap("Create a high-level implementation plan for the following project. "+
			"Break it down into four major phases and list 2-3 key milestones for each phase.", "Project"),
	},
	{
		ID:          "strategyChatbot",
		Section:     SectionStrategyEngine,
		Title:       "Strategy Chatbot",
		Description: "Ask questions about business frameworks and strategic concepts.",
		Placeholder: "e.g., Explain SWOT Analysis, What are Porter's Five Forces?",
		Template: wrap("Provide a clear and concise explanation of the following business strategy or framework. "+
			"Include its purpose and key components.", "Concept"),
	},
}

var synthesisCore = []Tool{
	{
		ID:          "crossDomainWeaver",
		Section:     SectionSynthesisCore,
		Title:       "Cross-Domain Weaver",
		Description: "Connect a concept to unrelated fields to spark innovation.",
		Placeholder: "e.g., Mycelial networks, quantum computing, ancient Greek philosophy...",
		Template: wrap("Analyze the core principles of the following concept and find surprising, insightful, and innovative connections "+
			"to three completely unrelated fields or domains. Explain the connection for each.", "Core Concept"),
	},
	{
		ID:          "analogyFinder",
		Section:     SectionSynthesisCore,
		Title:       "Analogy Finder",
		Description: "Find powerful analogies to explain complex ideas simply.",
		Placeholder: "e.g., Blockchain technology, general relativity, machine learning...",
		Template: wrap("You are a creative AI specializing in analogies. Find a surprising and insightful analogy from a completely different domain "+
			"to explain the core concept of the following complex idea. Explain why the analogy works.", "Complex Idea"),
	},
	{
		ID:          "futureForecaster",
		Section:     SectionSynthesisCore,
		Title:       "Future Forecaster",
		Description: "Extrapolate future trends based on a current technology or idea.",
		Placeholder: "e.g., Artificial general intelligence, ubiquitous augmented reality...",
		Template: wrap("Based on the current state of the following technology or idea, extrapolate and describe three potential future trends "+
			"or societal impacts it could have in the next 20 years.", "Technology/Idea"),
	},
	{
		ID:          "ethicalImplications",
		Section:     SectionSynthesisCore,
		Title:       "Ethical Implications",
		Description: "Explore the potential ethical dilemmas of a new concept.",
		Placeholder: "e.g., AI that can perfectly mimic human voices, fully autonomous weapons...",
		Template: wrap("Analyze the following concept or technology and identify three potential ethical dilemmas or societal challenges it might create. "+
			"For each point, briefly explain the nature of the ethical concern.", "Concept/Technology"),
	},
	{
		ID:          "systemMapper",
		Section:     SectionSynthesisCore,
		Title:       "System Mapper",
		Description: "Describe the interconnected parts of a complex system.",
		Placeholder: "e.g., A city's transportation network, the global food supply chain...",
		Template: wrap("Describe the following as a complex system. "+
			"Identify its key components, the relationships between them, and the overall emergent behavior of the system.", "System"),
	},
	{
		ID:          "synthesisChatbot",
		Section:     SectionSynthesisCore,
		Title:       "Synthesis Chatbot",
		Description: "Discuss historical examples of innovation and synthesis.",
		Placeholder: "e.g., The printing press, the invention of the GPS...",
		Template: wrap("Provide a historical example of a major innovation that resulted from the synthesis of ideas from different fields. "+
			"Describe the fields involved and how their combination led to the breakthrough.", "Topic of Interest"),
	},
}

// InspirationalPrompts seeds the image editor's "Inspire Me" action.
var InspirationalPrompts = []string{
	"Add a dreamy, watercolor painting effect.",
	"Make this look like a still from a Wes Anderson film.",
	"Turn the landscape into a futuristic cyberpunk city with neon lights.",
	"Add a majestic dragon flying in the sky.",
	"Change the season to a snowy winter landscape.",
}
