package i18n

var catalog = map[string]map[string]string{
	"en": {
		"flight_from":                "Flight from {origin} to {destination}",
		"direct_flight":              "Direct flight",
		"flight_with_stopover":       "Flight with a stopover",
		"flight_with_many_stopovers": "Flight with several stopovers",
		"airline":                    "Airline",
		"distance":                   "Distance: {distance}",
		"estimated_duration":         "Estimated duration: {hours}h {minutes}min",
		"estimated_price":            "Estimated price:",
		"economic":                   "Economic",
		"first_class":                "First class",
		"low_season":                 "Low season",
		"high_season":                "High season",
		"please":                     "Please complete all fields",
		"place_not_found":            "Place not found",
		"clear_sky":                  "Clear sky",
		"mainly_clear":               "Mainly clear",
		"partly_cloudy":              "Partly cloudy",
		"overcast":                   "Overcast",
		"foggy":                      "Foggy",
		"depositing_rime_fog":        "Depositing rime fog",
		"light_drizzle":              "Light drizzle",
		"moderate_drizzle":           "Moderate drizzle",
		"dense_drizzle":              "Dense drizzle",
		"slight_rain":                "Slight rain",
		"moderate_rain":              "Moderate rain",
		"heavy_rain":                 "Heavy rain",
		"slight_snowfall":            "Slight snowfall",
		"heavy_snowfall":             "Heavy snowfall",
		"thunderstorm":               "Thunderstorm",
		"unknown":                    "Unknown",
		"tip_shirt":                  "Wear a shirt",
		"tip_coat":                   "Wear a coat",
		"tip_umbrella":               "Use an umbrella",
		"tip_storms":                 "Be careful with storms",
		"tip_exchange":               "Exchange dollars",
		"tip_none":                   "No tips",
	},
	"es": {
		"flight_from":                "Vuelo de {origin} a {destination}",
		"direct_flight":              "Vuelo directo",
		"flight_with_stopover":       "Vuelo con escala",
		"flight_with_many_stopovers": "Vuelo con varias escalas",
		"airline":                    "Aerolínea",
		"distance":                   "Distancia: {distance}",
		"estimated_duration":         "Duración estimada: {hours}h {minutes}min",
		"estimated_price":            "Precio estimado:",
		"economic":                   "Económica",
		"first_class":                "Primera clase",
		"low_season":                 "Temporada baja",
		"high_season":                "Temporada alta",
		"please":                     "Por favor complete todos los campos",
		"place_not_found":            "Lugar no encontrado",
		"clear_sky":                  "Cielo despejado",
		"mainly_clear":               "Mayormente despejado",
		"partly_cloudy":              "Parcialmente nublado",
		"overcast":                   "Nublado",
		"foggy":                      "Niebla",
		"depositing_rime_fog":        "Niebla helada",
		"light_drizzle":              "Llovizna ligera",
		"moderate_drizzle":           "Llovizna moderada",
		"dense_drizzle":              "Llovizna densa",
		"slight_rain":                "Lluvia ligera",
		"moderate_rain":              "Lluvia moderada",
		"heavy_rain":                 "Lluvia intensa",
		"slight_snowfall":            "Nevada ligera",
		"heavy_snowfall":             "Nevada intensa",
		"thunderstorm":               "Tormenta",
		"unknown":                    "Desconocido",
		"tip_shirt":                  "Lleva una camiseta",
		"tip_coat":                   "Lleva un abrigo",
		"tip_umbrella":               "Usa paraguas",
		"tip_storms":                 "Ten cuidado con las tormentas",
		"tip_exchange":               "Cambia dólares",
		"tip_none":                   "Sin consejos",
	},
	"fr": {
		"flight_from":                "Vol de {origin} à {destination}",
		"direct_flight":              "Vol direct",
		"flight_with_stopover":       "Vol avec escale",
		"flight_with_many_stopovers": "Vol avec plusieurs escales",
		"airline":                    "Compagnie aérienne",
		"distance":                   "Distance : {distance}",
		"estimated_duration":         "Durée estimée : {hours}h {minutes}min",
		"estimated_price":            "Prix estimé :",
		"economic":                   "Économique",
		"first_class":                "Première classe",
		"low_season":                 "Basse saison",
		"high_season":                "Haute saison",
		"please":                     "Veuillez remplir tous les champs",
		"place_not_found":            "Lieu introuvable",
		"clear_sky":                  "Ciel dégagé",
		"partly_cloudy":              "Partiellement nuageux",
		"overcast":                   "Couvert",
		"foggy":                      "Brouillard",
		"slight_rain":                "Pluie faible",
		"moderate_rain":              "Pluie modérée",
		"heavy_rain":                 "Forte pluie",
		"thunderstorm":               "Orage",
		"unknown":                    "Inconnu",
	},
	"it": {
		"flight_from":                "Volo da {origin} a {destination}",
		"direct_flight":              "Volo diretto",
		"flight_with_stopover":       "Volo con scalo",
		"flight_with_many_stopovers": "Volo con più scali",
		"airline":                    "Compagnia aerea",
		"distance":                   "Distanza: {distance}",
		"estimated_duration":         "Durata stimata: {hours}h {minutes}min",
		"estimated_price":            "Prezzo stimato:",
		"economic":                   "Economica",
		"first_class":                "Prima classe",
		"low_season":                 "Bassa stagione",
		"high_season":                "Alta stagione",
		"please":                     "Per favore compila tutti i campi",
		"place_not_found":            "Luogo non trovato",
		"clear_sky":                  "Cielo sereno",
		"overcast":                   "Coperto",
		"thunderstorm":               "Temporale",
		"unknown":                    "Sconosciuto",
	},
	"de": {
		"flight_from":                "Flug von {origin} nach {destination}",
		"direct_flight":              "Direktflug",
		"flight_with_stopover":       "Flug mit Zwischenstopp",
		"flight_with_many_stopovers": "Flug mit mehreren Zwischenstopps",
		"airline":                    "Fluggesellschaft",
		"distance":                   "Entfernung: {distance}",
		"estimated_duration":         "Geschätzte Dauer: {hours}h {minutes}min",
		"estimated_price":            "Geschätzter Preis:",
		"economic":                   "Economy",
		"first_class":                "Erste Klasse",
		"low_season":                 "Nebensaison",
		"high_season":                "Hochsaison",
		"please":                     "Bitte alle Felder ausfüllen",
		"place_not_found":            "Ort nicht gefunden",
		"clear_sky":                  "Klarer Himmel",
		"overcast":                   "Bedeckt",
		"thunderstorm":               "Gewitter",
		"unknown":                    "Unbekannt",
	},
	"ja": {
		"flight_from":                "{origin}から{destination}へのフライト",
		"direct_flight":              "直行便",
		"flight_with_stopover":       "乗り継ぎ便",
		"flight_with_many_stopovers": "複数回の乗り継ぎ便",
		"airline":                    "航空会社",
		"distance":                   "距離: {distance}",
		"estimated_duration":         "推定所要時間: {hours}時間{minutes}分",
		"estimated_price":            "推定価格:",
		"economic":                   "エコノミー",
		"first_class":                "ファーストクラス",
		"low_season":                 "閑散期",
		"high_season":                "繁忙期",
	},
	"ch": {
		"flight_from":                "从{origin}到{destination}的航班",
		"direct_flight":              "直飞航班",
		"flight_with_stopover":       "经停航班",
		"flight_with_many_stopovers": "多次经停航班",
		"airline":                    "航空公司",
		"distance":                   "距离: {distance}",
		"estimated_duration":         "预计时长: {hours}小时{minutes}分钟",
		"estimated_price":            "预计价格:",
		"economic":                   "经济舱",
		"first_class":                "头等舱",
		"low_season":                 "淡季",
		"high_season":                "旺季",
	},
	"ar": {
		"flight_from":                "رحلة من {origin} إلى {destination}",
		"direct_flight":              "رحلة مباشرة",
		"flight_with_stopover":       "رحلة مع توقف",
		"flight_with_many_stopovers": "رحلة مع عدة توقفات",
		"airline":                    "شركة الطيران",
		"distance":                   "المسافة: {distance}",
		"estimated_duration":         "المدة المقدرة: {hours}س {minutes}د",
		"estimated_price":            "السعر المقدر:",
		"economic":                   "اقتصادية",
		"first_class":                "الدرجة الأولى",
		"low_season":                 "موسم منخفض",
		"high_season":                "موسم مرتفع",
	},
}
