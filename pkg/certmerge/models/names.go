package models

// NameColumnCandidates lists canonical headers commonly holding the
// person name, used to auto-detect the file-naming column and to pick
// the prominent line in the fallback page output.
var NameColumnCandidates = []string{
	"NOMBRE",
	"NOMBRE COMPLETO",
	"NOMBRE Y APELLIDO",
	"ALUMNO",
	"ESTUDIANTE",
	"PARTICIPANTE",
	"NAME",
	"FULL NAME",
}
