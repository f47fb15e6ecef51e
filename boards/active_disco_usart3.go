//go:build stm32f4disco && board_usart3

package boards

// Active is the variant this image was built for.
var Active = DiscoveryUSART3
