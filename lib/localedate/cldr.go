package localedate

import (
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/af"
	"github.com/go-playground/locales/am"
	"github.com/go-playground/locales/az"
	"github.com/go-playground/locales/be"
	"github.com/go-playground/locales/bg"
	"github.com/go-playground/locales/bn"
	"github.com/go-playground/locales/br"
	"github.com/go-playground/locales/bs"
	"github.com/go-playground/locales/ca"
	"github.com/go-playground/locales/cs"
	"github.com/go-playground/locales/cy"
	"github.com/go-playground/locales/da"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/el"
	locale_en_GB "github.com/go-playground/locales/en_GB"
	locale_en_US "github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/eo"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/et"
	"github.com/go-playground/locales/eu"
	"github.com/go-playground/locales/ff"
	"github.com/go-playground/locales/fi"
	"github.com/go-playground/locales/fo"
	"github.com/go-playground/locales/fr"
	locale_fr_CA "github.com/go-playground/locales/fr_CA"
	"github.com/go-playground/locales/fy"
	"github.com/go-playground/locales/ga"
	"github.com/go-playground/locales/gl"
	"github.com/go-playground/locales/gu"
	"github.com/go-playground/locales/ha"
	"github.com/go-playground/locales/he"
	"github.com/go-playground/locales/hi"
	"github.com/go-playground/locales/hr"
	"github.com/go-playground/locales/hu"
	"github.com/go-playground/locales/hy"
	"github.com/go-playground/locales/id"
	"github.com/go-playground/locales/is"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ka"
	"github.com/go-playground/locales/kk"
	"github.com/go-playground/locales/km"
	"github.com/go-playground/locales/kn"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/ky"
	"github.com/go-playground/locales/lo"
	"github.com/go-playground/locales/lt"
	"github.com/go-playground/locales/lv"
	"github.com/go-playground/locales/mg"
	"github.com/go-playground/locales/mk"
	"github.com/go-playground/locales/ml"
	"github.com/go-playground/locales/mn"
	"github.com/go-playground/locales/ms"
	"github.com/go-playground/locales/mt"
	"github.com/go-playground/locales/nb"
	"github.com/go-playground/locales/nl"
	locale_nl_BE "github.com/go-playground/locales/nl_BE"
	"github.com/go-playground/locales/nn"
	"github.com/go-playground/locales/or"
	"github.com/go-playground/locales/pa"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pt"
	locale_pt_PT "github.com/go-playground/locales/pt_PT"
	"github.com/go-playground/locales/ro"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/rw"
	"github.com/go-playground/locales/si"
	"github.com/go-playground/locales/sk"
	"github.com/go-playground/locales/sl"
	"github.com/go-playground/locales/sn"
	"github.com/go-playground/locales/so"
	"github.com/go-playground/locales/sq"
	"github.com/go-playground/locales/sr"
	"github.com/go-playground/locales/sv"
	"github.com/go-playground/locales/sw"
	"github.com/go-playground/locales/ta"
	"github.com/go-playground/locales/te"
	"github.com/go-playground/locales/th"
	"github.com/go-playground/locales/tr"
	"github.com/go-playground/locales/uk"
	"github.com/go-playground/locales/ur"
	"github.com/go-playground/locales/uz"
	"github.com/go-playground/locales/vi"
	"github.com/go-playground/locales/zh"
	locale_zh_Hant "github.com/go-playground/locales/zh_Hant"
	locale_zh_Hant_HK "github.com/go-playground/locales/zh_Hant_HK"
)

// cldrTranslators maps the target service's locale identifiers onto
// CLDR translators. Region variants fall back to their base language
// where weekday names do not differ; identifiers with no CLDR
// counterpart (en_UD, zz_TR, ...) are absent and handled by the next
// namer in the chain.
var cldrTranslators = map[string]func() locales.Translator{
	"af_ZA": af.New,
	"am_ET": am.New,
	"az_AZ": az.New,
	"be_BY": be.New,
	"bg_BG": bg.New,
	"bn_IN": bn.New,
	"br_FR": br.New,
	"bs_BA": bs.New,
	"ca_ES": ca.New,
	"cs_CZ": cs.New,
	"cy_GB": cy.New,
	"da_DK": da.New,
	"de_DE": de.New,
	"el_GR": el.New,
	"en_GB": locale_en_GB.New,
	"en_US": locale_en_US.New,
	"eo_EO": eo.New,
	"es_ES": es.New,
	"es_LA": es.New,
	"et_EE": et.New,
	"eu_ES": eu.New,
	"ff_NG": ff.New,
	"fi_FI": fi.New,
	"fo_FO": fo.New,
	"fr_CA": locale_fr_CA.New,
	"fr_FR": fr.New,
	"fy_NL": fy.New,
	"ga_IE": ga.New,
	"gl_ES": gl.New,
	"gu_IN": gu.New,
	"ha_NG": ha.New,
	"he_IL": he.New,
	"hi_IN": hi.New,
	"hr_HR": hr.New,
	"hu_HU": hu.New,
	"hy_AM": hy.New,
	"id_ID": id.New,
	"is_IS": is.New,
	"it_IT": it.New,
	"ja_JP": ja.New,
	"ja_KS": ja.New,
	"ka_GE": ka.New,
	"kk_KZ": kk.New,
	"km_KH": km.New,
	"kn_IN": kn.New,
	"ko_KR": ko.New,
	"ky_KG": ky.New,
	"lo_LA": lo.New,
	"lt_LT": lt.New,
	"lv_LV": lv.New,
	"mg_MG": mg.New,
	"mk_MK": mk.New,
	"ml_IN": ml.New,
	"mn_MN": mn.New,
	"ms_MY": ms.New,
	"mt_MT": mt.New,
	"nb_NO": nb.New,
	"nl_BE": locale_nl_BE.New,
	"nl_NL": nl.New,
	"nn_NO": nn.New,
	"or_IN": or.New,
	"pa_IN": pa.New,
	"pl_PL": pl.New,
	"pt_BR": pt.New,
	"pt_PT": locale_pt_PT.New,
	"ro_RO": ro.New,
	"ru_RU": ru.New,
	"rw_RW": rw.New,
	"si_LK": si.New,
	"sk_SK": sk.New,
	"sl_SI": sl.New,
	"sn_ZW": sn.New,
	"so_SO": so.New,
	"sq_AL": sq.New,
	"sr_RS": sr.New,
	"sv_SE": sv.New,
	"sw_KE": sw.New,
	"ta_IN": ta.New,
	"te_IN": te.New,
	"th_TH": th.New,
	"tr_TR": tr.New,
	"uk_UA": uk.New,
	"ur_PK": ur.New,
	"uz_UZ": uz.New,
	"vi_VN": vi.New,
	"zh_CN": zh.New,
	"zh_HK": locale_zh_Hant_HK.New,
	"zh_TW": locale_zh_Hant.New,
}

type cldrNamer struct{}

func (cldrNamer) WeekdayName(locale string, t time.Time) (string, bool) {
	newTranslator, ok := cldrTranslators[locale]
	if !ok {
		return "", false
	}
	return newTranslator().WeekdayWide(t.Weekday()), true
}
