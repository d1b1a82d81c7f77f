package models

// Settings представляет настройки сайта (синглтон, фиксированный ключ "global").
type Settings struct {
	Key             string `db:"key" json:"-"`
	HeroTagline     string `db:"hero_tagline" json:"heroTagline"`
	HeroTitle1      string `db:"hero_title1" json:"heroTitle1"`
	HeroTitle2      string `db:"hero_title2" json:"heroTitle2"`
	HeroDescription string `db:"hero_description" json:"heroDescription"`
	WhatsappLink    string `db:"whatsapp_link" json:"whatsappLink"`
	InstagramLink   string `db:"instagram_link" json:"instagramLink"`
	LinkedinLink    string `db:"linkedin_link" json:"linkedinLink"`
	Email           string `db:"email" json:"email"`
	Phone           string `db:"phone" json:"phone"`
	Address         string `db:"address" json:"address"`
	FooterTagline   string `db:"footer_tagline" json:"footerTagline"`
	JoinCta         string `db:"join_cta" json:"joinCta"`
}

// DefaultSettings возвращает настройки по умолчанию.
// Используются, когда запись в БД отсутствует: и эндпоинт настроек, и
// агрегированная выдача обязаны возвращать ровно этот объект.
func DefaultSettings() Settings {
	return Settings{
		Key:             SettingsKey,
		HeroTagline:     "Tech Community",
		HeroTitle1:      "Crack the",
		HeroTitle2:      "Digital Future",
		HeroDescription: "Join a community of builders, hackers and dreamers shaping what comes next.",
		WhatsappLink:    "https://chat.whatsapp.com/crackeddigital",
		InstagramLink:   "https://instagram.com/cracked.digital",
		LinkedinLink:    "https://linkedin.com/company/cracked-digital",
		Email:           "hello@cracked.digital",
		Phone:           "+91 00000 00000",
		Address:         "Bhopal, Madhya Pradesh, India",
		FooterTagline:   "Built by the community, for the community.",
		JoinCta:         "Join the Community",
	}
}

// Фиксированные ключи синглтонов.
const (
	SettingsKey = "global"
	VersionKey  = "global"
)
