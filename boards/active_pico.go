//go:build rp2040 && !board_pio_uart

package boards

// Active is the variant this image was built for.
var Active = Pico
