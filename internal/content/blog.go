// Package content holds the dashboard's static editorial content.
package content

import (
	"errors"
	"sort"

	"cryptodash/internal/models"
)

var ErrNotFound = errors.New("post not found")

const placeholderBody = "Full article content would go here..."

var posts = []models.BlogPost{
	{
		ID:      "1",
		Title:   "Understanding Bitcoin Halving: What It Means for Investors",
		Excerpt: "Bitcoin halving events occur approximately every four years and have historically had significant impacts on the cryptocurrency market. Learn what this means for your investment strategy.",
		Date:    "2024-01-15",
		Author:  "Sarah Johnson",
		Image:   "https://images.unsplash.com/photo-1639389016237-85a2d4935981?w=800&h=400&fit=crop",
	},
	{
		ID:      "2",
		Title:   "DeFi vs Traditional Banking: A Comprehensive Comparison",
		Excerpt: "Decentralized Finance (DeFi) is revolutionizing the financial sector. Explore how DeFi protocols compare to traditional banking systems in terms of accessibility, security, and returns.",
		Date:    "2024-01-12",
		Author:  "Michael Chen",
		Image:   "https://images.unsplash.com/photo-1642790106117-e829e14a795f?w=800&h=400&fit=crop",
	},
	{
		ID:      "3",
		Title:   "Top 5 Cryptocurrency Trends to Watch in 2024",
		Excerpt: "From institutional adoption to regulatory developments, discover the key trends that are shaping the cryptocurrency landscape this year.",
		Date:    "2024-01-10",
		Author:  "Alex Rodriguez",
		Image:   "https://images.unsplash.com/photo-1640340434855-6084b1f4901c?w=800&h=400&fit=crop",
	},
	{
		ID:      "4",
		Title:   "Security Best Practices for Cryptocurrency Holders",
		Excerpt: "Protecting your digital assets is crucial in the cryptocurrency space. Learn about hardware wallets, two-factor authentication, and other essential security measures.",
		Date:    "2024-01-08",
		Author:  "Emma Thompson",
		Image:   "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=800&h=400&fit=crop",
	},
	{
		ID:      "5",
		Title:   "NFTs Beyond Art: Utility and Real-World Applications",
		Excerpt: "While NFTs gained popularity through digital art, their potential extends far beyond. Explore how NFTs are being used in gaming, real estate, and identity verification.",
		Date:    "2024-01-05",
		Author:  "David Park",
		Image:   "https://images.unsplash.com/photo-1641580318181-c5b908c10dc3?w=800&h=400&fit=crop",
	},
	{
		ID:      "6",
		Title:   "Ethereum 2.0: The Complete Guide to the Upgrade",
		Excerpt: "Ethereum's transition to Proof of Stake brings significant changes to the network. Understand the technical improvements, environmental benefits, and impact on ETH holders.",
		Date:    "2024-01-03",
		Author:  "Lisa Wang",
		Image:   "https://images.unsplash.com/photo-1640826361253-8ba9d0415b65?w=800&h=400&fit=crop",
	},
}

// Posts returns a copy of the catalogue, newest first.
func Posts() []models.BlogPost {
	out := make([]models.BlogPost, len(posts))
	copy(out, posts)
	for i := range out {
		out[i].Content = placeholderBody
	}
	// dates are ISO 8601 so string order is date order
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func Post(id string) (models.BlogPost, error) {
	for _, p := range Posts() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.BlogPost{}, ErrNotFound
}
