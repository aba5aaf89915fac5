// Package translate renders Arabic item names in French for invoices.
package translate

import (
	"sort"
	"strings"
	"unicode"
)

// Fallback replaces a name that still contains Arabic after translation
// found nothing to change.
const Fallback = "Matériel électrique"

// Dictionary maps Arabic trade terms to French.
var Dictionary = map[string]string{
	// Cables and wires
	"كابل":                 "Câble",
	"سلك":                  "Fil",
	"نحاسي":                "cuivre",
	"مم":                   "mm",
	"كابل الهاتف":          "Câble téléphonique",
	"كابل التلفاز":         "Câble TV",
	"كابل الشبكة":          "Câble réseau",
	"كابل الألياف البصرية": "Fibre optique",
	"كابل HDMI":            "Câble HDMI",
	"كابل USB":             "Câble USB",
	"كابل طاقة":            "Câble d'alimentation",
	"كابل إشارة":           "Câble signal",
	"كابل تحكم":            "Câble de contrôle",
	"كابل أرضي":            "Câble de terre",
	"كابل محايد":           "Câble neutre",

	// Circuit breakers
	"قاطع":             "Disjoncteur",
	"ديفرنشال":         "Différentiel",
	"فيوز":             "Fusible",
	"قاطع ثلاثي الطور": "Disjoncteur triphasé",
	"قاطع أحادي الطور": "Disjoncteur monophasé",
	"قاطع مزدوج":       "Disjoncteur double",
	"قاطع رباعي":       "Disjoncteur quadruple",
	"قاطع سداسي":       "Disjoncteur sextuple",

	// Switches and outlets
	"مفتاح":                "Interrupteur",
	"أحادي":                "simple",
	"مزدوج":                "double",
	"ثلاثي":                "triple",
	"رباعي":                "quadruple",
	"خماسي":                "quintuple",
	"سداسي":                "sextuple",
	"مفتاح مع مؤشر":        "Interrupteur avec voyant",
	"مفتاح مع إضاءة":       "Interrupteur avec éclairage",
	"مفتاح مع مؤقت":        "Interrupteur temporisé",
	"مفتاح مع مستشعر حركة": "Interrupteur détecteur de mouvement",
	"مفتاح مع مستشعر ضوء":  "Interrupteur détecteur de lumière",
	"مفتاح خارجي":          "Interrupteur extérieur",
	"مفتاح داخلي":          "Interrupteur intérieur",
	"مفتاح مقاوم للماء":    "Interrupteur étanche",
	"مفتاح مقاوم للغبار":   "Interrupteur anti-poussière",
	"مفتاح مقاوم للانفجار": "Interrupteur antidéflagrant",
	"قابس":                 "Prise",
	"قابس مع أرضي":         "Prise avec terre",
	"قابس بدون أرضي":       "Prise sans terre",
	"قابس خارجي":           "Prise extérieure",
	"قابس داخلي":           "Prise intérieure",
	"قابس مقاوم للماء":     "Prise étanche",
	"قابس مقاوم للغبار":    "Prise anti-poussière",
	"قابس مقاوم للانفجار":  "Prise antidéflagrante",
	"قابس USB":             "Prise USB",
	"قابس شبكة":            "Prise réseau",
	"قابس هاتف":            "Prise téléphone",
	"قابس تلفاز":           "Prise TV",
	"قابس إنترنت":          "Prise internet",

	// Lighting
	"مصباح":   "Ampoule",
	"LED":     "LED",
	"فلورسنت": "Fluorescent",
	"هالوجين": "Halogène",
	"صوديوم":  "Sodium",
	"نيون":    "Néon",
	"سبوت":    "Spot",
	"ثريا":    "Lustre",
	"إضاءة":   "Éclairage",
	"طوارئ":   "urgence",
	"أمان":    "sécurité",
	"خروج":    "sortie",
	"مسار":    "chemin",
	"حديقة":   "jardin",
	"خارجية":  "extérieur",

	// Distribution boards
	"لوحة توزيع":  "Tableau électrique",
	"صندوق توزيع": "Boîte de dérivation",
	"فتحات":       "pôles",
	"صناعية":      "industriel",
	"منزلية":      "domestique",
	"تجارية":      "commercial",

	// Conduits
	"أنبوب":  "Tuyau",
	"كهرباء": "électrique",
	"مرن":    "flexible",
	"معدني":  "métallique",
	"قناة":   "Goulotte",
	"وصل":    "Raccord",
	"كوع":    "Coude",
	"تيه":    "Té",
	"غطاء":   "Bouchon",
	"قفل":    "Collier",

	// Accessories
	"شريط":    "Ruban",
	"عازل":    "isolant",
	"لاصق":    "adhésif",
	"كهربائي": "électrique",
	"تفلون":   "Téflon",
	"حراري":   "thermique",
	"مسامير":  "Vis",
	"حامل":    "Support",
	"دومينو":  "Domino",
	"مؤقت":    "Minuterie",
	"مستشعر":  "Capteur",
	"حركة":    "mouvement",
	"ضوء":     "lumière",
	"حرارة":   "température",
	"رطوبة":   "humidité",
	"دخان":    "fumée",

	// Tools
	"كماشة":      "Pince",
	"عادية":      "standard",
	"طويلة":      "longue",
	"قصيرة":      "courte",
	"مسطحة":      "plate",
	"مستديرة":    "ronde",
	"مفك":        "Tournevis",
	"مسطح":       "plat",
	"صليبي":      "cruciforme",
	"نجمة":       "étoile",
	"توركس":      "Torx",
	"أسلاك":      "fils",
	"أنابيب":     "tuyaux",
	"قنوات":      "goulottes",
	"لوحات":      "tableaux",
	"زجاج":       "verre",
	"مقياس":      "Multimètre",
	"جهد":        "tension",
	"تيار":       "courant",
	"مقاومة":     "résistance",
	"استمرارية":  "continuité",
	"عزل":        "isolation",
	"أرضي":       "terre",
	"تردد":       "fréquence",
	"قدرة":       "puissance",
	"معامل قدرة": "facteur de puissance",
	"اختبار":     "test",
	"مؤشر":       "indicateur",
	"راديو":      "radio",
	"تلفاز":      "TV",
	"هاتف":       "téléphone",
	"لحام":       "Soudure",
	"غاز":        "gaz",
	"مثقاب":      "Perceuse",
	"يدوي":       "manuel",
	"مطرقة":      "perforateur",
	"منشار":      "Scie",
	"دائري":      "circulaire",
	"شريطي":      "à ruban",
	"ميتري":      "à onglet",

	// Industrial equipment
	"محول":   "Transformateur",
	"مولد":   "Générateur",
	"بطارية": "Batterie",
	"شاحن":   "Chargeur",
	"شمسي":   "solaire",
	"سيارة":  "voiture",
	"محمول":  "portable",
	"سريع":   "rapide",

	// Automation
	"PLC":                  "Automate",
	"HMI":                  "Interface homme-machine",
	"VFD":                  "Variateur de fréquence",
	"Soft Starter":         "Démarreur progressif",
	"Contactor":            "Contacteur",
	"Relay":                "Relais",
	"Timer":                "Minuterie",
	"Counter":              "Compteur",
	"Sensor":               "Capteur",
	"Actuator":             "Actionneur",
	"Valve":                "Vanne",
	"Pump":                 "Pompe",
	"Motor":                "Moteur",
	"Fan":                  "Ventilateur",
	"Heater":               "Résistance",
	"Cooler":               "Refroidisseur",
	"Thermostat":           "Thermostat",
	"Humidistat":           "Hygrostat",
	"Pressure Switch":      "Pressostat",
	"Level Switch":         "Niveau",
	"Flow Switch":          "Débitmètre",
	"Temperature Sensor":   "Capteur de température",
	"Pressure Sensor":      "Capteur de pression",
	"Level Sensor":         "Capteur de niveau",
	"Flow Sensor":          "Capteur de débit",
	"Vibration Sensor":     "Capteur de vibration",
	"Control Panel":        "Tableau de commande",
	"Operator Panel":       "Pupitre opérateur",
	"Touch Screen":         "Écran tactile",
	"Keypad":               "Clavier",
	"Display":              "Affichage",
	"Communication Module": "Module de communication",
	"Network Module":       "Module réseau",
	"I/O Module":           "Module E/S",
	"Analog Module":        "Module analogique",
	"Digital Module":       "Module numérique",

	// Security
	"كاميرا":           "Caméra",
	"مراقبة":           "surveillance",
	"مسجل":             "Enregistreur",
	"فيديو":            "vidéo",
	"شاشة":             "Écran",
	"نظام":             "Système",
	"إنذار":            "alarme",
	"كاشف":             "Détecteur",
	"صافرة":            "Sirène",
	"لوحة تحكم":        "Tableau de contrôle",
	"مفتاح طوارئ":      "Bouton d'urgence",
	"زر":               "Bouton",
	"إلكتروني":         "électronique",
	"قارئ":             "Lecteur",
	"بطاقة":            "carte",
	"بصمة":             "empreinte",
	"وجه":              "visage",
	"عين":              "iris",
	"بوابة":            "Porte",
	"حاجز":             "Barrière",
	"دوارة":            "tourniquet",
	"انزلاقية":         "coulissante",
	"مرفوعة":           "levante",
	"نظام صوت":         "Système audio",
	"ميكروفون":         "Microphone",
	"مكبر صوت":         "Haut-parleur",
	"سماعة":            "Écouteur",
	"جهاز اتصال داخلي": "Interphone",

	// Renewable energy
	"لوح شمسي":         "Panneau solaire",
	"منظم شمسي":        "Régulateur solaire",
	"عاكس شمسي":        "Onduleur solaire",
	"بطارية شمسية":     "Batterie solaire",
	"حامل لوح شمسي":    "Support panneau solaire",
	"قاعدة لوح شمسي":   "Base panneau solaire",
	"كابل شمسي":        "Câble solaire",
	"صندوق توصيل شمسي": "Boîte de jonction solaire",
	"صمام شمسي":        "Diode solaire",
}

// Translator replaces known terms in item names.
type Translator struct {
	r *strings.Replacer
}

// New builds a translator over dict. At any position the longest matching
// term wins, so "كابل الهاتف" is preferred to "كابل".
func New(dict map[string]string) *Translator {
	terms := make([]string, 0, len(dict))
	for k := range dict {
		terms = append(terms, k)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	pairs := make([]string, 0, 2*len(terms))
	for _, k := range terms {
		pairs = append(pairs, k, dict[k])
	}
	return &Translator{r: strings.NewReplacer(pairs...)}
}

// Translate returns the French rendering of text. Text with Arabic that no
// term matched becomes Fallback; anything else is returned unchanged.
func (t *Translator) Translate(text string) string {
	if text == "" {
		return text
	}
	out := t.r.Replace(text)
	if out == text && hasArabic(text) {
		return Fallback
	}
	return out
}

var standard = New(Dictionary)

// French translates text with the built-in dictionary.
func French(text string) string {
	return standard.Translate(text)
}

func hasArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}
