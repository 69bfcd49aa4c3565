package metadomain

// Mapeamento de "objective" -> "action_type" usado para contar conversões
var MetaObjectiveToActionType = map[string]string{
	"LINK_CLICKS":           "link_click",
	"POST_ENGAGEMENT":       "post_engagement",
	"PAGE_LIKES":            "like",
	"VIDEO_VIEWS":           "video_view",
	"LEAD_GENERATION":       "lead",
	"CONVERSIONS":           "offsite_conversion",
	"APP_INSTALLS":          "app_install",
	"PRODUCT_CATALOG_SALES": "offsite_conversion.fb_pixel_purchase",
	"MESSAGES":              "onsite_conversion.messaging_first_reply",
	"STORE_TRAFFIC":         "store_visit",
	"EVENT_RESPONSES":       "rsvp",
	"OUTCOME_LEADS":         "lead",
	"OUTCOME_SALES":         "offsite_conversion.fb_pixel_purchase",
	"OUTCOME_TRAFFIC":       "link_click",
	"OUTCOME_ENGAGEMENT":    "onsite_conversion.messaging_conversation_started_7d",
}
