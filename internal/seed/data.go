package seed

import "github.com/jlbeauty/salon-booking-api/internal/models"

// Starter catalog the salon opens with. Service ids double as the
// frontend translation keys; prices are in dirhams.
var DefaultServices = []models.Service{
	// Coiffure
	{ID: "brushing_simple", Price: 100, Duration: "30 min", Icon: "💇‍♀️", Category: "Coiffure"},
	{ID: "brushing_wavy", Price: 150, Duration: "45 min", Icon: "🌊", Category: "Coiffure"},
	{ID: "coupe", Price: 200, Duration: "40 min", Icon: "✂️", Category: "Coiffure"},
	{ID: "coupe_brushing", Price: 250, Duration: "1h", Icon: "💇‍♀️", Category: "Coiffure"},

	// Coloration
	{ID: "coloration_racines", Price: 300, Duration: "1h", Icon: "🖌️", Category: "Coloration"},
	{ID: "coloration_complete", Price: 500, Duration: "1h30", Icon: "🎨", Category: "Coloration"},
	{ID: "balayage", Price: 800, Duration: "3h", Icon: "✨", Category: "Coloration"},
	{ID: "ombre_hair", Price: 900, Duration: "3h30", Icon: "🌗", Category: "Coloration"},

	// Soins & lissages
	{ID: "soin_botox", Price: 600, Duration: "1h30", Icon: "💉", Category: "Soins Capillaires"},
	{ID: "lissage_keratine", Price: 1200, Duration: "3h", Icon: "🧬", Category: "Lissage"},
	{ID: "lissage_proteine", Price: 1500, Duration: "3h", Icon: "🧪", Category: "Lissage"},
	{ID: "lissage_caviar", Price: 1800, Duration: "3h30", Icon: "💎", Category: "Lissage"},

	// Hammam & spa
	{ID: "hammam_beldi", Price: 150, Duration: "45 min", Icon: "🧖‍♀️", Category: "Hammam"},
	{ID: "hammam_royal", Price: 300, Duration: "1h", Icon: "👑", Category: "Hammam"},
	{ID: "hammam_vip", Price: 500, Duration: "1h30", Icon: "🌟", Category: "Hammam"},
	{ID: "massage_relaxant", Price: 400, Duration: "1h", Icon: "💆‍♀️", Category: "Spa"},

	// Onglerie
	{ID: "manucure_simple", Price: 80, Duration: "30 min", Icon: "💅", Category: "Onglerie"},
	{ID: "manucure_russe", Price: 200, Duration: "1h", Icon: "🇷🇺", Category: "Onglerie"},
	{ID: "pedicure_simple", Price: 100, Duration: "45 min", Icon: "🦶", Category: "Onglerie"},
	{ID: "pedicure_spa", Price: 250, Duration: "1h", Icon: "🛁", Category: "Onglerie"},
	{ID: "pose_vernis_permanent", Price: 150, Duration: "45 min", Icon: "💅", Category: "Onglerie"},
	{ID: "pose_gel", Price: 350, Duration: "2h", Icon: "💅", Category: "Onglerie"},

	// Esthétique & maquillage
	{ID: "epilation_sourcils", Price: 50, Duration: "15 min", Icon: "👁️", Category: "Esthétique"},
	{ID: "epilation_visage", Price: 100, Duration: "30 min", Icon: "💆‍♀️", Category: "Esthétique"},
	{ID: "maquillage_soiree", Price: 400, Duration: "1h", Icon: "💄", Category: "Maquillage"},
	{ID: "maquillage_mariee", Price: 1500, Duration: "2h", Icon: "👰", Category: "Maquillage"},
}

var DefaultTeam = []models.TeamMember{
	{
		ID:     "kenza",
		Name:   "Kenza B.",
		RoleID: "coloriste",
		Bio:    "La reine du blond polaire et de l'ombré hair à Casablanca. 8 ans d'expérience.",
		Image:  "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400&q=80",
	},
	{
		ID:     "sarah",
		Name:   "Sarah L.",
		RoleID: "lissage",
		Bio:    "Maîtrise parfaite des lissages (Tanin, Brésilien, Collagène). Diagnostic personnalisé.",
		Image:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&q=80",
	},
	{
		ID:     "nadia",
		Name:   "Nadia H.",
		RoleID: "estheticienne",
		Bio:    "Experte en soins de la mariée et rituels du Hammam traditionnel.",
		Image:  "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=400&q=80",
	},
	{
		ID:     "leila",
		Name:   "Leila M.",
		RoleID: "manucuriste",
		Bio:    "Perfectionniste de la manucure russe et du Nail Art créatif.",
		Image:  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&q=80",
	},
}

var DefaultReviews = []models.Review{
	{
		Name:    "Houda El Fassi",
		Text:    "Mes cheveux revivent ! Le lissage est juste incroyable, souples et brillants. Merci Sarah pour le conseil.",
		Rating:  5,
		Service: "Lissage Protéine",
		Active:  true,
	},
	{
		Name:    "Salma Benjelloun",
		Text:    "J'ai pris le pack mariée complet. Le Hammam était royal et mon maquillage a tenu toute la soirée. Une équipe au top !",
		Rating:  5,
		Service: "Pack Mariée",
		Active:  true,
	},
	{
		Name:    "Yasmine Tazi",
		Text:    "Enfin un salon à Casa qui maîtrise le blond sans abîmer les cheveux. Je recommande à 1000%.",
		Rating:  5,
		Service: "Ombré Hair",
		Active:  true,
	},
}
