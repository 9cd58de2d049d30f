package server

// indexHTML is the browser client: a bare canvas that mirrors the native
// window host. It forwards pointer events over the websocket and paints
// whatever frame last arrived.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>forceviz</title>
  <style>
    body { margin: 0; background: #1a1a1a; overflow: hidden; }
    canvas { display: block; cursor: default; }
  </style>
</head>
<body>
<canvas id="c"></canvas>
<script>
  const canvas = document.getElementById('c');
  const ctx = canvas.getContext('2d');
  canvas.width = window.innerWidth;
  canvas.height = window.innerHeight;

  const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');

  ws.onmessage = (msg) => {
    const frame = JSON.parse(msg.data);
    ctx.fillStyle = '#1a1a1a';
    ctx.fillRect(0, 0, canvas.width, canvas.height);

    ctx.strokeStyle = 'rgba(255,255,255,0.38)';
    ctx.lineWidth = 1;
    for (const s of frame.segments || []) {
      ctx.beginPath();
      ctx.moveTo(s.from.X, s.from.Y);
      ctx.lineTo(s.to.X, s.to.Y);
      ctx.stroke();
    }

    ctx.fillStyle = '#e53935';
    for (const r of frame.rings || []) {
      ctx.beginPath();
      ctx.arc(r.center.X, r.center.Y, r.radius, 0, Math.PI * 2);
      ctx.fill();
    }
  };

  function send(ev) {
    if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(ev));
  }
  function mods(e) {
    return (e.shiftKey ? 1 : 0) | (e.ctrlKey ? 2 : 0) | (e.altKey ? 4 : 0);
  }

  canvas.addEventListener('mousedown', (e) => {
    send({type: 'down', button: e.button === 0 ? 0 : 1, modifiers: mods(e), x: e.offsetX, y: e.offsetY});
  });
  canvas.addEventListener('mouseup', (e) => {
    send({type: 'up', button: e.button === 0 ? 0 : 1, x: e.offsetX, y: e.offsetY});
  });
  canvas.addEventListener('mousemove', (e) => {
    send({type: 'move', x: e.offsetX, y: e.offsetY});
  });
  canvas.addEventListener('wheel', (e) => {
    e.preventDefault();
    const type = e.shiftKey ? 'rotate' : 'wheel';
    const delta = e.shiftKey ? e.deltaY / 1000 : e.deltaY;
    send({type: type, delta: delta, x: e.offsetX, y: e.offsetY});
  }, {passive: false});

  window.addEventListener('resize', () => {
    canvas.width = window.innerWidth;
    canvas.height = window.innerHeight;
  });
</script>
</body>
</html>
`
