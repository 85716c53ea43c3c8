package interfaces

// ApplicationContext carries a parsed request body and the underlying
// transport context (a *gin.Context in the HTTP layer) into controllers
// without binding them to gin directly.
type ApplicationContext[T any] struct {
	Ctx  interface{}
	Body *T
	Keys map[string]any
}

func (ac *ApplicationContext[T]) GetContextData(key string) any {
	if ac.Keys == nil {
		return nil
	}
	return ac.Keys[key]
}

func (ac *ApplicationContext[T]) GetStringContextData(key string) string {
	value, ok := ac.GetContextData(key).(string)
	if !ok {
		return ""
	}
	return value
}
