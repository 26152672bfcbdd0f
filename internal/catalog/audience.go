package catalog

import "github.com/simaogato/ethicalfolio-backend/internal/domain"

// Audience returns the segmentation matrix
func Audience() *domain.AudienceMatrix {
	return &domain.AudienceMatrix{
		X: domain.MatrixAxis{Name: "Investment Experience", Low: "Novice", High: "Expert"},
		Y: domain.MatrixAxis{Name: "Impact Priority", Low: "Financial Focus", High: "Impact Focus"},
		Segments: []domain.AudienceSegment{
			{
				ID:              "traditional-investors",
				Name:            "Traditional Investors",
				Description:     "Conservative investors focused on financial returns",
				Size:            35,
				Characteristics: []string{"Age 50+", "High net worth", "Risk averse", "Long-term horizon"},
				PainPoints:      []string{"Lack of transparency", "High fees", "Limited impact options"},
				Motivations:     []string{"Capital preservation", "Steady returns", "Tax efficiency"},
				Color:           "#6C757D",
				Position:        domain.MatrixPosition{X: 20, Y: 80},
			},
			{
				ID:              "millennial-conscious",
				Name:            "Millennial Conscious Consumers",
				Description:     "Young professionals who want to align money with values",
				Size:            28,
				Characteristics: []string{"Age 25-40", "Middle income", "Socially aware", "Tech-savvy"},
				PainPoints:      []string{"Greenwashing concerns", "Complex investment options", "Limited accessibility"},
				Motivations:     []string{"Social impact", "Environmental change", "Personal values alignment"},
				Color:           "#05BFDB",
				Position:        domain.MatrixPosition{X: 70, Y: 60},
			},
			{
				ID:              "gen-z-activists",
				Name:            "Gen Z Activists",
				Description:     "Young activists demanding systemic change through investments",
				Size:            20,
				Characteristics: []string{"Age 18-24", "Student/early career", "Highly engaged", "Digital natives"},
				PainPoints:      []string{"Entry barriers", "Lack of education", "Trust issues with finance"},
				Motivations:     []string{"Climate action", "Social justice", "Future generations"},
				Color:           "#FF6B6B",
				Position:        domain.MatrixPosition{X: 85, Y: 30},
			},
			{
				ID:              "corporate-sustainability",
				Name:            "Corporate Sustainability Officers",
				Description:     "Business leaders implementing ESG strategies",
				Size:            12,
				Characteristics: []string{"Corporate executives", "ESG focused", "Large portfolios", "Influential"},
				PainPoints:      []string{"Measuring impact", "Regulatory compliance", "Stakeholder alignment"},
				Motivations:     []string{"Brand reputation", "Risk management", "Long-term value creation"},
				Color:           "#A3B763",
				Position:        domain.MatrixPosition{X: 60, Y: 85},
			},
			{
				ID:              "family-offices",
				Name:            "Family Offices",
				Description:     "Multi-generational wealth management with ethical considerations",
				Size:            5,
				Characteristics: []string{"Ultra-high net worth", "Multi-generational", "Sophisticated", "Philanthropic"},
				PainPoints:      []string{"Legacy preservation", "Family governance", "Impact measurement"},
				Motivations:     []string{"Family values", "Intergenerational equity", "Sustainable wealth"},
				Color:           "#9368B7",
				Position:        domain.MatrixPosition{X: 40, Y: 90},
			},
		},
	}
}
