package view

type Login struct {
	Email   string
	Message string
}
