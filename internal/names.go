package internal

import "strings"

// ConstellationCount is the number of IAU constellations.
const ConstellationCount = 88

const constellationNames = "" +
	"AndAntApsAqlAqrAraAriAurBooCaeCamCapCarCasCenCepCetChaCirCMaCMiCnc" +
	"ColComCrACrBCrtCruCrvCVnCygDelDorDraEquEriForGemGruHerHorHyaHyiInd" +
	"LacLeoLepLibLMiLupLynLyrMenMicMonMusNorOctOphOriPavPegPerPhePicPsA" +
	"PscPupPyxRetSclScoSctSerSexSgeSgrTauTelTrATriTucUMaUMiVelVirVolVul"

// UrsaMinor is the index of "UMi", returned by lookups that find no
// boundary to the north of the queried point.
var UrsaMinor = MustConstellationIndex("UMi")

// ConstellationName returns the three-letter abbreviation for idx, or "???"
// when idx is out of range.
func ConstellationName(idx int) string {
	if idx < 0 || idx >= ConstellationCount {
		return "???"
	}
	return constellationNames[idx*3 : idx*3+3]
}

// ConstellationIndex resolves a three-letter abbreviation. Matching ignores
// case, since some copies of the boundary catalogue use upper case codes.
func ConstellationIndex(code string) (int, bool) {
	if len(code) != 3 {
		return -1, false
	}
	for i := 0; i < ConstellationCount; i++ {
		if strings.EqualFold(constellationNames[i*3:i*3+3], code) {
			return i, true
		}
	}
	return -1, false
}

func MustConstellationIndex(code string) int {
	idx, ok := ConstellationIndex(code)
	if !ok {
		panic("unknown constellation " + code)
	}
	return idx
}
