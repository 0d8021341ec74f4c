package localedate

// Day/month pattern (%d = day, %m = month, anything else literal) the
// birthday tooltip uses under each display locale. Locales whose digits
// are not Latin numerals (ar_AR, as_IN, cb_IQ, fa_IR, mr_IN, my_MM,
// ne_NP, ps_AF) need dedicated numeral handling and are intentionally
// absent.
var datePatterns = map[string]string{
	"af_ZA": "%d-%m",
	"am_ET": "%m/%d",
	"az_AZ": "%d.%m",
	"be_BY": "%d.%m",
	"bg_BG": "%d.%m",
	"bn_IN": "%d/%m",
	"br_FR": "%d/%m",
	"bs_BA": "%d.%m.",
	"ca_ES": "%d/%m",
	"co_FR": "%m-%d",
	"cs_CZ": "%d. %m.",
	"cx_PH": "%m-%d",
	"cy_GB": "%d/%m",
	"da_DK": "%d.%m",
	"de_DE": "%d.%m.",
	"el_GR": "%d/%m",
	"en_GB": "%d/%m",
	"en_UD": "%m/%d",
	"en_US": "%m/%d",
	"eo_EO": "%m-%d",
	"es_ES": "%d/%m",
	"es_LA": "%d/%m",
	"et_EE": "%d.%m",
	"eu_ES": "%m/%d",
	"ff_NG": "%d/%m",
	"fi_FI": "%d.%m.",
	"fo_FO": "%d.%m",
	"fr_CA": "%m-%d",
	"fr_FR": "%d/%m",
	"fy_NL": "%d-%m",
	"ga_IE": "%d/%m",
	"gl_ES": "%d/%m",
	"gn_PY": "%m-%d",
	"gu_IN": "%d/%m",
	"ha_NG": "%m/%d",
	"he_IL": "%d.%m",
	"hi_IN": "%d/%m",
	"hr_HR": "%d. %m.",
	"ht_HT": "%m-%d",
	"hu_HU": "%m. %d.",
	"hy_AM": "%d.%m",
	"id_ID": "%d/%m",
	"is_IS": "%d.%m.",
	"it_IT": "%d/%m",
	"ja_JP": "%m/%d",
	"ja_KS": "%m/%d",
	"jv_ID": "%d/%m",
	"ka_GE": "%d.%m",
	"kk_KZ": "%d.%m",
	"km_KH": "%d/%m",
	"kn_IN": "%d/%m",
	"ko_KR": "%m. %d.",
	"ku_TR": "%m-%d",
	"ky_KG": "%d-%m",
	"lo_LA": "%d/%m",
	"lt_LT": "%m-%d",
	"lv_LV": "%d.%m.",
	"mg_MG": "%d/%m",
	"mk_MK": "%d.%m",
	"ml_IN": "%d/%m",
	// the month segment carries a literal "-р сар" marker, still
	// entity-encoded at parse time
	"mn_MN": "%m-&#x440; &#x441;&#x430;&#x440;/%d",
	"ms_MY": "%d-%m",
	"mt_MT": "%m-%d",
	"nb_NO": "%d.%m.",
	"nl_BE": "%d/%m",
	"nl_NL": "%d-%m",
	"nn_NO": "%d.%m.",
	"or_IN": "%m/%d",
	"pa_IN": "%d/%m",
	"pl_PL": "%d.%m",
	"pt_BR": "%d/%m",
	"pt_PT": "%d/%m",
	"ro_RO": "%d.%m",
	"ru_RU": "%d.%m",
	"rw_RW": "%m-%d",
	"sc_IT": "%m-%d",
	"si_LK": "%m-%d",
	"sk_SK": "%d. %m.",
	"sl_SI": "%d. %m.",
	"sn_ZW": "%m-%d",
	"so_SO": "%m/%d",
	"sq_AL": "%d.%m",
	"sr_RS": "%d.%m.",
	"sv_SE": "%d/%m",
	"sw_KE": "%d/%m",
	"sy_SY": "%m-%d",
	"sz_PL": "%m-%d",
	"ta_IN": "%d/%m",
	"te_IN": "%d/%m",
	"tg_TJ": "%m-%d",
	"th_TH": "%d/%m",
	"tl_PH": "%m/%d",
	"tr_TR": "%d/%m",
	"tt_RU": "%d.%m",
	"tz_MA": "%m/%d",
	"uk_UA": "%d.%m",
	"ur_PK": "%d/%m",
	"uz_UZ": "%d/%m",
	"vi_VN": "%d/%m",
	"zh_CN": "%m/%d",
	"zh_HK": "%d/%m",
	"zh_TW": "%m/%d",
	"zz_TR": "%m-%d",
}
