package data

import (
	"event-ease/models"

	"github.com/shopspring/decimal"
)

// SampleConcerts returns the starter catalog written into the store on first
// boot of a fresh profile. Ids and prices are fixed so seeding stays
// deterministic.
func SampleConcerts() []models.Concert {
	return []models.Concert{
		{
			ID:               "1",
			Title:            "Safar Tour",
			Artist:           "Arijit Singh",
			Date:             "2025-11-22",
			Time:             "7:00 PM",
			Venue:            "Jawaharlal Nehru Stadium",
			Location:         "Delhi, DL",
			Price:            decimal.NewFromInt(4999),
			Description:      "Experience a magical evening with the king of Bollywood melodies, Arijit Singh, as he performs his greatest hits.",
			AvailableTickets: 250,
			Category:         "Bollywood",
		},
		{
			ID:               "2",
			Title:            "An Evening with Prateek Kuhad",
			Artist:           "Prateek Kuhad",
			Date:             "2025-12-05",
			Time:             "8:00 PM",
			Venue:            "The Piano Man Jazz Club",
			Location:         "Gurgaon, HR",
			Price:            decimal.NewFromInt(2499),
			Description:      "An intimate acoustic performance featuring Prateek Kuhad's most beloved songs in a cozy and personal setting.",
			AvailableTickets: 100,
			Category:         "Indie/Acoustic",
		},
		{
			ID:               "3",
			Title:            "Bass Raja Tour",
			Artist:           "Nucleya",
			Date:             "2026-01-18",
			Time:             "9:00 PM",
			Venue:            "Palace Grounds",
			Location:         "Bengaluru, KA",
			Price:            decimal.NewFromInt(1999),
			Description:      "Get ready for an electrifying night with Nucleya's signature bass-heavy tracks and stunning visual effects.",
			AvailableTickets: 300,
			Category:         "Electronic",
		},
		{
			ID:               "4",
			Title:            "Sufi Soul Night",
			Artist:           "The Wadali Brothers",
			Date:             "2026-02-14",
			Time:             "7:30 PM",
			Venue:            "Siri Fort Auditorium",
			Location:         "Delhi, DL",
			Price:            decimal.NewFromInt(3500),
			Description:      "A sophisticated evening of soul-stirring Sufi music with the legendary Wadali Brothers.",
			AvailableTickets: 150,
			Category:         "Sufi",
		},
		{
			ID:               "5",
			Title:            "Rock On India",
			Artist:           "Parikrama",
			Date:             "2026-03-01",
			Time:             "8:30 PM",
			Venue:            "Hard Rock Cafe",
			Location:         "Mumbai, MH",
			Price:            decimal.NewFromInt(1299),
			Description:      "Join Indian rock legends Parikrama for an explosive show filled with their iconic hits and powerful guitar solos.",
			AvailableTickets: 200,
			Category:         "Indian Rock",
		},
		{
			ID:               "6",
			Title:            "Masters of Percussion",
			Artist:           "Ustad Zakir Hussain",
			Date:             "2026-03-20",
			Time:             "7:00 PM",
			Venue:            "Shanmukhananda Hall",
			Location:         "Mumbai, MH",
			Price:            decimal.NewFromInt(4500),
			Description:      "Experience the magic of tabla with the world-renowned maestro Ustad Zakir Hussain in a timeless classical performance.",
			AvailableTickets: 120,
			Category:         "Indian Classical",
		},
	}
}
