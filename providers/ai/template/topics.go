package template

import (
	"fmt"
	"strings"

	"github.com/leofalp/deckgen/core/deck"
	"github.com/leofalp/deckgen/providers/ai"
)

// topicLibrary maps recognised subjects to curated slide material. Unknown
// subjects fall back to generic scaffolding built around the topic string.
type topicLibrary struct {
	// keywords maps a lowercase substring of the topic to a curated entry.
	keywords map[string]string
	entries  map[string][]deck.ContentBlock
}

func (l topicLibrary) blockFor(slot ai.Slot) deck.ContentBlock {
	// Slot 0 is always the deck's title slide.
	if slot.Index == 0 {
		return deck.ContentBlock{
			Title:  fmt.Sprintf("%s - Comprehensive Overview", slot.Topic),
			Body:   fmt.Sprintf("An in-depth exploration of %s", slot.Topic),
			Layout: deck.LayoutTitle,
		}
	}

	if curated, ok := l.lookup(slot.Topic); ok {
		// Content slides cycle through the curated set.
		block := curated[(slot.Index-1)%len(curated)]
		block.Title = renderTopic(block.Title, slot.Topic)
		return block
	}

	return genericBlock(slot)
}

func (l topicLibrary) lookup(topic string) ([]deck.ContentBlock, bool) {
	lower := strings.ToLower(topic)
	for keyword, name := range l.keywords {
		if strings.Contains(lower, keyword) {
			entry, ok := l.entries[name]
			return entry, ok && len(entry) > 0
		}
	}
	return nil, false
}

// renderTopic substitutes the topic into curated titles that carry the
// {topic} placeholder.
func renderTopic(s, topic string) string {
	return strings.ReplaceAll(s, "{topic}", topic)
}

// genericBlock scaffolds a well-formed slide for topics outside the library,
// varying layout by slot position so a generic deck still reads like a deck.
func genericBlock(slot ai.Slot) deck.ContentBlock {
	layout := deck.Layout(slot.Layout)
	if !layout.Valid() || layout == deck.LayoutTitle {
		switch slot.Index % 3 {
		case 1:
			layout = deck.LayoutBulletPoints
		case 2:
			layout = deck.LayoutTwoColumn
		default:
			layout = deck.LayoutContentWithImage
		}
	}

	topic := slot.Topic
	switch layout {
	case deck.LayoutTwoColumn:
		return deck.ContentBlock{
			Title:       fmt.Sprintf("%s Analysis", topic),
			LeftColumn:  "Key Concepts:\n\n• Fundamental principles\n• Core methodologies\n• Essential frameworks\n• Best practices",
			RightColumn: "Applications:\n\n• Real-world examples\n• Industry implementations\n• Success stories\n• Case studies",
			Layout:      layout,
		}
	case deck.LayoutContentWithImage:
		return deck.ContentBlock{
			Title:       fmt.Sprintf("%s Implementation Strategy", topic),
			Body:        fmt.Sprintf("Strategic approach to implementing %s in modern organizations", topic),
			ImagePrompt: fmt.Sprintf("%s implementation roadmap diagram showing phases and milestones", topic),
			Layout:      layout,
		}
	default:
		return deck.ContentBlock{
			Title: fmt.Sprintf("Understanding %s", topic),
			BulletPoints: []string{
				fmt.Sprintf("Definition and scope of %s", topic),
				"Historical background and development",
				"Current trends and applications",
				"Future prospects and challenges",
			},
			Layout: deck.LayoutBulletPoints,
		}
	}
}

// builtinLibrary returns the curated topic material shipped with the engine.
// Titles may carry a {topic} placeholder substituted at generation time.
func builtinLibrary() topicLibrary {
	return topicLibrary{
		keywords: map[string]string{
			"artificial intelligence": "ai",
			"ai":                      "ai",
			"machine learning":        "machine_learning",
			"ml":                      "machine_learning",
			"digital transformation":  "digital_transformation",
			"cloud computing":         "cloud_computing",
			"cloud":                   "cloud_computing",
			"business strategy":       "business_strategy",
			"strategy":                "business_strategy",
		},
		entries: map[string][]deck.ContentBlock{
			"ai": {
				{
					Title: "Understanding {topic}",
					BulletPoints: []string{
						"Definition: systems that perform tasks requiring human intelligence",
						"Types: narrow AI (specific tasks) vs general AI (human-like intelligence)",
						"Key technologies: machine learning, deep learning, neural networks",
						"Applications: healthcare, finance, transportation, entertainment",
					},
					Layout: deck.LayoutBulletPoints,
				},
				{
					Title:       "{topic} Technologies and Applications",
					LeftColumn:  "Core Technologies:\n\n• Machine learning algorithms\n• Deep neural networks\n• Natural language processing\n• Computer vision",
					RightColumn: "Industry Applications:\n\n• Healthcare: diagnosis & treatment\n• Finance: fraud detection\n• Transportation: autonomous vehicles\n• Retail: personalized shopping",
					Layout:      deck.LayoutTwoColumn,
				},
				{
					Title:       "{topic} Implementation Strategy",
					Body:        "Strategic approach to implementing AI solutions in organizations",
					ImagePrompt: "AI implementation roadmap diagram",
					Layout:      deck.LayoutContentWithImage,
				},
				{
					Title: "Ethics and Future Trends",
					BulletPoints: []string{
						"Ethical considerations: bias, privacy, transparency",
						"Regulatory framework: data protection and AI governance",
						"Future trends: quantum AI, edge computing, AI democratization",
						"Challenges: job displacement, security, trust",
					},
					Layout: deck.LayoutBulletPoints,
				},
			},
			"machine_learning": {
				{
					Title: "Machine Learning Fundamentals",
					BulletPoints: []string{
						"Supervised learning: labelled data, classification and regression",
						"Unsupervised learning: clustering and dimensionality reduction",
						"Reinforcement learning: agents optimizing long-run reward",
						"Model evaluation: train/test splits, cross-validation, metrics",
					},
					Layout: deck.LayoutBulletPoints,
				},
				{
					Title:       "Algorithms and Tooling",
					LeftColumn:  "Classic Algorithms:\n\n• Linear and logistic regression\n• Decision trees and ensembles\n• Support vector machines\n• k-means clustering",
					RightColumn: "Modern Tooling:\n\n• Gradient-boosted trees\n• Deep learning frameworks\n• Feature stores and pipelines\n• Experiment tracking",
					Layout:      deck.LayoutTwoColumn,
				},
				{
					Title:       "Deploying {topic} in Production",
					Body:        "From notebook to production: packaging, serving, monitoring, and retraining models",
					ImagePrompt: "ML lifecycle diagram from data collection to monitoring",
					Layout:      deck.LayoutContentWithImage,
				},
			},
			"digital_transformation": {
				{
					Title: "Drivers of Digital Transformation",
					BulletPoints: []string{
						"Customer expectations of always-on digital services",
						"Competitive pressure from digital-native entrants",
						"Cost reduction through process automation",
						"Data as a strategic asset",
					},
					Layout: deck.LayoutBulletPoints,
				},
				{
					Title:       "Transformation Focus Areas",
					LeftColumn:  "Technology:\n\n• Cloud migration\n• API-first architecture\n• Automation and AI\n• Modern data platforms",
					RightColumn: "Organization:\n\n• Agile operating models\n• Digital skills development\n• Product-led culture\n• Change management",
					Layout:      deck.LayoutTwoColumn,
				},
			},
			"cloud_computing": {
				{
					Title: "Cloud Service Models",
					BulletPoints: []string{
						"IaaS: virtualized compute, storage, and networking",
						"PaaS: managed runtimes and developer platforms",
						"SaaS: complete applications delivered over the network",
						"Serverless: event-driven execution without capacity planning",
					},
					Layout: deck.LayoutBulletPoints,
				},
				{
					Title:       "Benefits and Considerations",
					LeftColumn:  "Benefits:\n\n• Elastic scalability\n• Pay-as-you-go economics\n• Global availability\n• Managed operations",
					RightColumn: "Considerations:\n\n• Data residency and compliance\n• Vendor lock-in\n• Cost governance\n• Security shared responsibility",
					Layout:      deck.LayoutTwoColumn,
				},
			},
			"business_strategy": {
				{
					Title: "Elements of {topic}",
					BulletPoints: []string{
						"Vision and mission: where the organization is heading",
						"Market analysis: customers, competitors, and positioning",
						"Capability assessment: strengths to build on, gaps to close",
						"Execution roadmap: initiatives, owners, and milestones",
					},
					Layout: deck.LayoutBulletPoints,
				},
				{
					Title:       "Strategy in Practice",
					Body:        "Translating strategic intent into measurable initiatives and operating decisions",
					ImagePrompt: "Strategy pyramid from vision to daily execution",
					Layout:      deck.LayoutContentWithImage,
				},
			},
		},
	}
}
