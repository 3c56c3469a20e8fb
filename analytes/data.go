package analytes

// Tabla de analitos predefinidos de Evity. El orden de declaración es
// parte del contrato del catálogo: la búsqueda parcial devuelve la
// primera coincidencia en este orden.
var predefinedAnalytes = []Definition{
	{Name: "ALT", Unit: "U/L", Normal: "M: 9-46\nF: 6-25"},
	{Name: "Albúmina", Unit: "g/dL", Normal: "3.6-5.1"},
	{Name: "Albúmina en orina (mg/g)", Normal: "< 30", ModerateRisk: "30-300", HighRisk: ">300"},
	{Name: "Amilasa (U/L)", Normal: "21-101", ModerateRisk: "1-3x mayor que el límite superior de la normal", HighRisk: "≥ 3x mayor que el límite superior de la normal"},
	{Name: "Anticuerpos anti-tiroglobulina", Unit: "IU/mL", Normal: "< 4.0", HighRisk: "> 4.0"},
	{Name: "Anticuerpos antinucleares", Normal: "Negativo", ModerateRisk: "Positivo (título bajo < 1:80)", HighRisk: "Positivo (título alto ≥ 1:80)"},
	{Name: "Anticuerpos antiperoxidasa tiroidea", Unit: "IU/mL", Normal: "≤ 9", HighRisk: "> 9"},
	{Name: "Antígeno prostático total (ng/mL)", Normal: "≤ 4", ModerateRisk: "4-10", HighRisk: "> 10"},
	{Name: "Apo A1 (mg/dL)", Normal: "M: ≥ 120\nF: ≥ 140", ModerateRisk: "M: 25-119\nF: 25-139", HighRisk: "< 25"},
	{Name: "Apo B (mg/dL)", Normal: "< 90", ModerateRisk: "90-119", HighRisk: "120-139"},
	{Name: "Apo B/A1", Normal: "M: < 0.7\nF: < 0.6", ModerateRisk: "M: 0.7-0.9\nF: 0.6-0.8", HighRisk: "M: > 0.9\nF: > 0.8"},
	{Name: "Apo E", Normal: "E2", ModerateRisk: "E3/E3", HighRisk: "E3/E4"},
	{Name: "Aspecto", Normal: "Claro", ModerateRisk: "Espumoso", HighRisk: "Turbio y opaco"},
	{Name: "Bacterias/CPA", Normal: "Ausentes", ModerateRisk: "Trazas", HighRisk: "Bacteriuria significativa"},
	{Name: "Basófilos", Unit: "%", Normal: "0-1"},
	{Name: "Bilirrubina", Normal: "Negativo", ModerateRisk: "Trazas", HighRisk: "Positivo"},
	{Name: "Bilirrubina total", Unit: "mg/dL", Normal: "0.2-1.2"},
	{Name: "CHCM", Unit: "g/dL", Normal: "33-36"},
	{Name: "Cadmio urinario (µg/g creatinine)", Normal: "< 2", ModerateRisk: "2-2.9", HighRisk: "≥ 3"},
	{Name: "Calcio", Unit: "mg/dL", Normal: "8.4-10.2", ModerateRisk: "6.6-8.3 o 10.3-12.9", HighRisk: "≤ 6.5 o ≥ 13"},
	{Name: "Captación TU", Unit: "%", Normal: "24-39", HighRisk: "< 24 o > 39"},
	{Name: "Cetonas", Normal: "Negativo", ModerateRisk: "Trazas", HighRisk: "≥ 10 mg/dl"},
	{Name: "Cistatina C (mg/L)", Normal: "18-49 años de edad: 0.63-1.03\n≥ 50 años de edad: 0.67-1.21"},
	{Name: "Cloro", Unit: "mEq/L", Normal: "98-106", HighRisk: "Rango de referencia de laboratorio"},
	{Name: "Coenzima Q10 (mcg/L)", Normal: "433-1532", HighRisk: "< 433 o > 1532"},
	{Name: "Colesterol total", Unit: "mg/dL", Normal: "< 200", ModerateRisk: "200-239", HighRisk: "≥ 240"},
	{Name: "Color", Normal: "Amarillo claro", ModerateRisk: "Amarillo oscuro", HighRisk: "Sangrado: rosado o rojizo\n Enfermedad hepática / deshidratación: café\nProblema hepático o en conducto biliar: naranja \nInfección urinaria severa: blanco/lechoso"},
	{Name: "Cortisol en saliva (11 pm) (ng/dl)", Normal: "< 100", ModerateRisk: "100-145", HighRisk: "> 145"},
	{Name: "Creatinina", Unit: "mg/dL", Normal: "M: 0.74-1.35\nF: 0.59-1.04"},
	{Name: "Creatinina en orina (mg/g)", Normal: "16-326", ModerateRisk: "< 16 o > 326"},
	{Name: "Cromo (ng/ml)", Normal: "≤ 0.4", ModerateRisk: "0.5-1", HighRisk: "> 1"},
	{Name: "Células epiteliales escamosas", Normal: "Nada o casi nada", ModerateRisk: "Moderado (posible contaminación)", HighRisk: "Significativas"},
	{Name: "Células epiteliales transicionales", Normal: "Nada o casi nada", ModerateRisk: "Presentes", HighRisk: "Numerosos y/o células atípicas"},
	{Name: "Deamidated Gliadin (IgA) (U/ml)", Normal: "Negativo (< 15)", HighRisk: "Positivo (≥ 15)"},
	{Name: "Densidad", Normal: "1.001-1.035"},
	{Name: "Eosinófilos", Unit: "%", Normal: "0-3"},
	{Name: "EpiAge?", Normal: "Δ ≤ 0 (edad biológica no mayor que la cronológica)", ModerateRisk: "Δ modestamente > 0", HighRisk: "Δ sustancialmente > 0"},
	{Name: "Eritrocitos", Normal: "4.2-5.9"},
	{Name: "Eritrocitos/CPA", Normal: "0-2"},
	{Name: "Eritrocitos/µL", Normal: "0-6"},
	{Name: "Esterasa leucocitaria", Normal: "Negativo", ModerateRisk: "Trazas", HighRisk: "Elevado"},
	{Name: "Estradiol (pg/ml)", Normal: "M: 10-40\nF que menstrúa: 15-350\nF posmenopausica: < 10"},
	{Name: "FSH (mlU/mL)", Normal: "M: 1.5-12.4\nF (depende de fase)\nfolicular: 3.5-12.5\novulación: 4.7-21.5\nlútea: 1.7-7.7\nposmenopausia: 25-135"},
	{Name: "Factor reumatoide (IU/mL)", Normal: "Negativo", ModerateRisk: "Positivo (título bajo ≤ 3x límite superior de lo normal)", HighRisk: "Positivo (título bajo > 3x límite superior de lo normal)"},
	{Name: "Ferritina", Unit: "ng/ml", Normal: "M: 30-400\nF: 15-150", HighRisk: "> 300"},
	{Name: "Ferritina (ng/ml)", Normal: "M: 30-400\nF: 15-150", ModerateRisk: "< 45", HighRisk: "M: > 300\nF: > 200"},
	{Name: "Filamento mucoso", Normal: "Nada o casi nada", ModerateRisk: "Moderado", HighRisk: "Significativo"},
	{Name: "Folato (ng/mL)", Normal: "≥ 4", HighRisk: "< 4"},
	{Name: "Fósforo", Unit: "mg/dL", Normal: "3.0-4.5", ModerateRisk: "1.1-2.9 o > 4.5", HighRisk: "≤ 1.0"},
	{Name: "GRAIL Cancer Test", Normal: "Cancer signal not detected", HighRisk: "Cancer signal detected"},
	{Name: "Globulina transportadora de hormonas sexuales (SHBG) (nmol/L)", Normal: "M: 10-57\nF: 18-144"},
	{Name: "Globulinas", Normal: "1.9-3.7"},
	{Name: "Glucosa", Normal: "Negativo (< 30 mg/dl)", ModerateRisk: "30-100 mg/dl", HighRisk: "> 100 mg/dl"},
	{Name: "Gut Zoomer", Normal: "Referencia de la institución que lo procesa"},
	{Name: "HCM", Unit: "pg", Normal: "28-32"},
	{Name: "HDL size", Unit: "nm", Normal: "≥ 9.6", ModerateRisk: "9.2-9.5", HighRisk: "< 9.2"},
	{Name: "HDL-C", Unit: "mg/dL", Normal: "≥ 60", ModerateRisk: "M: 40-59\nF: 50-59", HighRisk: "M: < 40\nF: < 50"},
	{Name: "HDL-P", Unit: "µmol/L", Normal: "≥ 34.9", ModerateRisk: "30.5–34.8", HighRisk: "< 30.5"},
	{Name: "HOMA-IR", Normal: "< 2.5", ModerateRisk: "2.5-2.9", HighRisk: "≥ 3.0"},
	{Name: "HbA1c (%)", Normal: "< 5.7", ModerateRisk: "5.7-6.4", HighRisk: "≥ 6.5"},
	{Name: "Hematocrito", Unit: "%", Normal: "M: 37-47\nF: 42-50"},
	{Name: "Hemoglobina", Unit: "g/dL", Normal: "12-16", ModerateRisk: "Anemia leve: 11-11.9\nAnemia moderada: < 8.0", HighRisk: "< 8.0"},
	{Name: "Hemoglobina en orina", Normal: "Negativo", ModerateRisk: "Trazas", HighRisk: "Macroscópico"},
	{Name: "Hierro", Unit: "µg/dl", Normal: "M: 80-180\nF: 60160"},
	{Name: "Homocisteína (µmol/L)", Normal: "5-15", ModerateRisk: "15-30", HighRisk: "> 30"},
	{Name: "Hormona antimuleriana (ng/mL)", Normal: "M: < 13 \nF (depende de edad)\n20-29 años: 0.89-12\n30-39 años: 0.15-8.1\n40-49 años: 0.03-5.5\n50-55 años:< 0.88\n56-89 años: < 0.03"},
	{Name: "Hormona leutinizante (mlU/mL)", Normal: "M: 1.8-8.6\nF (depende de fase)\nfolicular: 2-12\novulación: muy elevada\nlútea: 1-11\nposmenopausia: elevada"},
	{Name: "LDL size", Unit: "nm", Normal: "≥ 21.2", ModerateRisk: "20.4–21.1", HighRisk: "< 20.4"},
	{Name: "LDL-C", Unit: "mg/dL", Normal: "< 100", ModerateRisk: "100-159", HighRisk: "160-189"},
	{Name: "LDL-P", Unit: "nmol/L", Normal: "< 1000", ModerateRisk: "1000-1299", HighRisk: "1300-1599"},
	{Name: "Large HDL-P", Unit: "µmol?l", Normal: "≥ 7.3", ModerateRisk: "4.8-7.2", HighRisk: "< 4.8"},
	{Name: "Large VLDL-P", Unit: "nmol/L", Normal: "< 2.7", ModerateRisk: "2.7-6.9", HighRisk: "> 6.9"},
	{Name: "Leucocitos", Unit: "×10^9/L", Normal: "4.0-11.0", ModerateRisk: "11.1-99.9 o < 4.0", HighRisk: "≥ 100"},
	{Name: "Leucocitos/CPA", Normal: "0-5"},
	{Name: "Leucocitos/µL", Normal: "0-9"},
	{Name: "Linfocitos", Unit: "%", Normal: "30-45"},
	{Name: "Lipasa (U/L)", Normal: "M: 13-78\nF (depende de edad)\n18-70 años de edad: 14-72\n≥ 71 años de edad: 14-85", ModerateRisk: "1-3x mayor que el límite superior de la normal", HighRisk: "≥ 3x mayor que el límite superior de la normal"},
	{Name: "Magnesio", Unit: "mg/dL", Normal: "1.6-2.6", ModerateRisk: "1.1-1.5 o 2.7-8.9", HighRisk: "≤ 1 o ≥ 9"},
	{Name: "Mercurio (µg/dL)", Normal: "< 1", ModerateRisk: "1-1.5", HighRisk: "> 1.5"},
	{Name: "Molibdeno (ng/mL)", Normal: "0.3-1.2", HighRisk: "< 0.3 o > 10"},
	{Name: "Monocitos", Unit: "%", Normal: "0-6"},
	{Name: "Neutrófilos", Unit: "%", Normal: "50-70"},
	{Name: "Nitritos", Normal: "Negativo", HighRisk: "Positivo"},
	{Name: "Non-HDL-C", Unit: "mg/dL", Normal: "< 130", ModerateRisk: "130-159", HighRisk: "160-189"},
	{Name: "Omega 3 (%)", Normal: "> 8", ModerateRisk: "4-8", HighRisk: "< 4"},
	{Name: "Omega 6:3 ratio", Normal: "3:1-5:1", ModerateRisk: "5:1-10:1", HighRisk: ">10:1"},
	{Name: "Plaquetas", Unit: "×10^9/L", Normal: "150-450", ModerateRisk: "Trombocitopenia: 41-149\nTrombocitosis: 451-999", HighRisk: "≤ 40 o ≥ 1000"},
	{Name: "Plomo (µg/dL)", Normal: "< 3.5", ModerateRisk: "3.5-9", HighRisk: "≥ 10"},
	{Name: "Potasio", Unit: "mEq/L", Normal: "3.5-5", ModerateRisk: "Levemente bajo: 3.0-3.4\nLevemente alto: 5.5-5.9", HighRisk: "Críticamente bajo: ≤ 2.5\nCríticamente alto: ≥ 6.0"},
	{Name: "Proteinas", Normal: "Negativo (< 15 mg/dl)", ModerateRisk: "Trazas", HighRisk: "≥ 30 mg/dl"},
	{Name: "Proteínas totales", Unit: "g/dL", Normal: "6.1-8.1"},
	{Name: "Péptido C (ng/mL)", Normal: "0.8-3.85"},
	{Name: "Ratio BUN / Creatinina", Normal: "10-20"},
	{Name: "Relación albúmina/globulina", Unit: "A/G", Normal: "1.0-2.5"},
	{Name: "Relación microalbúmina/creatinina en orina (mg/g)", Normal: "M: < 17\nF: < 25", ModerateRisk: "M: 17-299\nF: 25-299", HighRisk: "≥ 300"},
	{Name: "Saturación de transferrina", Unit: "%", Normal: "20-50%", ModerateRisk: "< 20%", HighRisk: "M: > 50%\nF: > 45%"},
	{Name: "Selenio (mcg/L)", Normal: "110-165", ModerateRisk: "40-109", HighRisk: "< 40"},
	{Name: "Small LDL-P", Unit: "nmol/L", Normal: "< 527", ModerateRisk: "527–839", HighRisk: "> 839"},
	{Name: "Sodio", Unit: "mEq/L", Normal: "136-145", ModerateRisk: "Hiponatremia leve: 130-135\nHiponatremia moderada: 125-129\nHipernatremia no crítica: 146-159", HighRisk: "Hiponatremia profunda: < 125"},
	{Name: "T3", Normal: "2.0-4.4"},
	{Name: "T4", Unit: "mcg/dL", Normal: "4.5-11.7", HighRisk: "< 4.5 o > 11.7"},
	{Name: "T4 libre", Normal: "0.8-1.8"},
	{Name: "TC/HDL", Normal: "≤ 3.5", ModerateRisk: "3.6-5", HighRisk: "> 5"},
	{Name: "TFG (Cistatina C) (mL/min/1.73m²)", Normal: "≥ 90", ModerateRisk: "60-89", HighRisk: "30-59"},
	{Name: "TFG (mL/min/1.73m²)", Normal: "≥ 90", ModerateRisk: "60-89", HighRisk: "30-59"},
	{Name: "TG/HDL-C", Normal: "< 2.0", ModerateRisk: "2-3", HighRisk: "> 3.0"},
	{Name: "TSH (ng/dL)", Normal: "0.3-4.2", ModerateRisk: "Hipotiroidismo subclínico: 4.3-9.9\nHipertiroidismo subclínico: 0.1-0.39", HighRisk: "Hipotiroidismo: ≥ 10\nHipertioidismo: < 0.1"},
	{Name: "Testosterona libre (pg/ml)", Normal: "M (depende de edad)\n20-29 años: 50.5-207\n30-39 años: 46.5-190\n40-49 años: 42.6-171\n50-59 años: 38.7-156\n60-69 años: 34.7-139\n70-79 años: 30.8-122\n80-89 años: 26.9-105\n\nF (depende de edad)\n20-29 años: < 1.3-10.8\n30-39 años: < 1.3-10.3\n40-49 años: < 1.3-9.8\n50-59 años: < 1.3-9.2\n60-69 años: <1.3-8.7\n70-79 años: <1.3-8.2\n80-89 años: <1.3-7.6", HighRisk: "M (depende de edad)\n< o > del rango normal\n\nF: no especificado"},
	{Name: "Testosterona total (ng/dl)", Normal: "M: 300-950\nF: 8-60 (rango de referencia de lab)", ModerateRisk: "M: 264-299\nF: no especificado", HighRisk: "M: < 264\nF: < 8 o > 60"},
	{Name: "Tissue Transglutaminase (IgA) (U/ml)", Normal: "Negatvo (< 4)", ModerateRisk: "4-10", HighRisk: "Positivo (> 10)"},
	{Name: "Tissue Transglutaminase (IgG) (U/ml)", Normal: "Negatvo (< 6)", ModerateRisk: "6-9", HighRisk: "Positivo (> 9)"},
	{Name: "Triglicéridos", Unit: "mg/dL", Normal: "< 150", ModerateRisk: "150-199", HighRisk: "200-499"},
	{Name: "Urea", Unit: "mg/dL", Normal: "M: 8-24\nF: 6-21"},
	{Name: "Urobilinógeno", Unit: "mg/dl", Normal: "0.2-1.0", ModerateRisk: "2", HighRisk: "> 2.0"},
	{Name: "VCM", Unit: "fL", Normal: "80-98"},
	{Name: "VLDL size", Unit: "nm", Normal: "< 46.6", ModerateRisk: "46.6-52.5", HighRisk: "> 52.5"},
	{Name: "VPM", Unit: "fL", Normal: "7-9"},
	{Name: "Vitamina A (Retinol) (mg/L)", Normal: "32.5-78", ModerateRisk: "20-32.4", HighRisk: "< 20"},
	{Name: "Vitamina B12 (ng/ml)", Normal: "0.180-0.914", ModerateRisk: "0.150-0.179", HighRisk: "< 0.150"},
	{Name: "Vitamina D (ng/ml)", Normal: "30-100", ModerateRisk: "21-29", HighRisk: "< 20"},
	{Name: "Vitamina E (Alfa Tocoferol) (mg/L)", Normal: "20-39 años de edad: 0.7-4.9\n40-59 años de edad: 0.5-5.5\n60-89 años de dad: 0.5-4.9", HighRisk: "20-39 años de edad: < 0.7 o > 4.9\n40-59 años de edad: < 0.5 o > 5.5\n60-89 años de dad: < 0.5 o > 4.9"},
	{Name: "Vitamina E (Beta-Gamma tocoferol) (mg/L)", Normal: "20-39 años de edad: 5.9-19.4\n40-59 años de edad: 7.0-25.1\n60-79 años de dad: 9-29", HighRisk: "20-39 años de edad: < 5.9 o > 19.4\n40-59 años de edad: < 7 o > 25.1\n60-79 años de dad: < 9 o > 29"},
	{Name: "Yodo proteíco", Unit: "mcg/dL", Normal: "4-8", HighRisk: "Sugiere hipertioidismo: > 8-9\nSugiere mixedema: < 3-4"},
	{Name: "Yodo urinario (µg/L)", Normal: "100-199", ModerateRisk: "50-99 o 200-299", HighRisk: "< 50 o ≥ 300"},
	{Name: "hsCRP (mg/L)", Normal: "< 1.0", ModerateRisk: "1.0-3.0", HighRisk: "> 3.0"},
	{Name: "pH", Normal: "4.6-8.0"},
	{Name: "Ácido metilmalónico (µmol/L)", Normal: "≤ 0.40", HighRisk: "> 0.40"},
	{Name: "Ácido úrico", Unit: "mg/dL", Normal: "M: 3.7-8\nF: 2.7-6.1"},
	{Name: "Índice de tiroxina libre", Unit: "mcg/dL", Normal: "4.8-12.7", HighRisk: "< 4.8 o > 12.7"},
}

// Sinónimos comunes (alias en minúsculas -> nombre canónico). Algunos
// alias apuntan a analitos que aún no existen en la tabla; Resolve los
// ignora hasta que se agreguen.
var analyteSynonyms = map[string]string{
	"glucosa en ayunas": "Glucosa",
	"glucose": "Glucosa",
	"hemoglobina glucosilada": "HbA1c (%)",
	"hba1c": "HbA1c (%)",
	"colesterol hdl": "HDL-C",
	"hdl": "HDL-C",
	"colesterol ldl": "LDL-C",
	"ldl": "LDL-C",
	"colesterol": "Colesterol total",
	"trigliceridos": "Triglicéridos",
	"tg": "Triglicéridos",
	"urea": "Urea",
	"bun": "Urea",
	"creatinina": "Creatinina",
	"acido urico": "Ácido úrico",
	"alt": "ALT",
	"ast": "AST",
	"tgo": "AST",
	"tgp": "ALT",
	"bilirrubina directa": "Bilirrubina",
	"bilirrubina indirecta": "Bilirrubina",
	"proteina c reactiva": "hsCRP (mg/L)",
	"pcr": "hsCRP (mg/L)",
	"proteina c reactiva ultrasensible": "hsCRP (mg/L)",
	"vitamina d": "Vitamina D (ng/ml)",
	"25-hidroxivitamina d": "Vitamina D (ng/ml)",
	"vitamina b12": "Vitamina B12 (ng/ml)",
	"folato": "Folato (ng/mL)",
	"acido folico": "Folato (ng/mL)",
	"hierro serico": "Hierro",
	"ferritina": "Ferritina (ng/ml)",
	"tsh": "TSH (ng/dL)",
	"t3": "T3",
	"t4": "T4",
	"t4 libre": "T4 libre",
	"hemoglobina": "Hemoglobina",
	"hematocrito": "Hematocrito",
	"leucocitos": "Leucocitos",
	"plaquetas": "Plaquetas",
	"eritrocitos": "Eritrocitos",
	"vcm": "VCM",
	"hcm": "HCM",
	"chcm": "CHCM",
	"neutrofilos": "Neutrófilos",
	"linfocitos": "Linfocitos",
	"monocitos": "Monocitos",
	"eosinofilos": "Eosinófilos",
	"basofilos": "Basófilos",
	"sodio": "Sodio",
	"potasio": "Potasio",
	"cloro": "Cloro",
	"calcio": "Calcio",
	"fosforo": "Fósforo",
	"magnesio": "Magnesio",
	"albumina": "Albúmina",
	"globulinas": "Globulinas",
	"proteinas totales": "Proteínas totales",
	"insulina": "HOMA-IR",
	"homocisteina": "Homocisteína (µmol/L)",
	"testosterona": "Testosterona total (ng/dl)",
	"testosterona total": "Testosterona total (ng/dl)",
	"testosterona libre": "Testosterona libre (pg/ml)",
	"estradiol": "Estradiol (pg/ml)",
	"progesterona": "Progesterona",
	"cortisol": "Cortisol en saliva (11 pm) (ng/dl)",
	"dhea": "DHEA-s",
	"dhea-s": "DHEA-s",
	"fsh": "FSH (mlU/mL)",
	"lh": "Hormona leutinizante (mlU/mL)",
	"psa": "Antígeno prostático total (ng/mL)",
	"antigeno prostatico": "Antígeno prostático total (ng/mL)",
	"omega 3": "Omega 3 (%)",
	"apolipoproteina b": "Apo B (mg/dL)",
	"apo b": "Apo B (mg/dL)",
	"apolipoproteina a1": "Apo A1 (mg/dL)",
	"apo a1": "Apo A1 (mg/dL)",
	"lp(a)": "Lp(a)",
	"lipoproteina a": "Lp(a)",
	"peptido c": "Péptido C (ng/mL)",
}
