package model

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Religion string

const (
	ReligionChristian Religion = "christian"
	ReligionMuslim    Religion = "muslim"
)
